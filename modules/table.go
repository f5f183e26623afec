package modules

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrUnknownModule is returned by Import for module names that were never
// registered.
var ErrUnknownModule = errors.New("unknown module")

// Importer resolves a dotted module name to its namespace. The registry
// depends only on this capability, so tests and hosts can substitute their
// own implementation.
type Importer interface {
	Import(module string) (*Namespace, error)
}

// Namer is an optional capability of an Importer: reverse lookup from a
// concrete type to the qualified name it was defined under.
type Namer interface {
	NameOf(t reflect.Type) (string, bool)
}

// Table maps dotted module names to namespaces. The zero value is not
// usable; construct with NewTable. A process-global table (Default) backs
// init-time registration; tests build private tables for isolation.
type Table struct {
	mu         sync.RWMutex
	namespaces map[string]*Namespace
	byType     map[reflect.Type]string
}

// NewTable returns an empty module table.
func NewTable() *Table {
	return &Table{
		namespaces: make(map[string]*Namespace),
		byType:     make(map[reflect.Type]string),
	}
}

// Module returns the namespace for the given dotted name, creating it on
// first use. Plugin packages call this during registration:
//
//	modules.Default().Module("acme.filters").
//		DefineClass("Grayscale", Grayscale{}).
//		DefineFunc("ListClasses", ListClasses)
func (t *Table) Module(name string) *Namespace {
	if name == "" {
		panic("modules: empty module name")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ns, ok := t.namespaces[name]
	if !ok {
		ns = newNamespace(name)
		ns.table = t
		t.namespaces[name] = ns
	}
	return ns
}

// Import implements Importer.
func (t *Table) Import(module string) (*Namespace, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ns, ok := t.namespaces[module]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}
	return ns, nil
}

// NameOf implements Namer. It returns the qualified name the type was first
// defined under (re-exports do not add entries).
func (t *Table) NameOf(typ reflect.Type) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.byType[typ]
	return name, ok
}

// index records the defining qualified name for a type. First definition
// wins, matching the first-seen policy used everywhere else.
func (t *Table) index(c Class) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byType[c.Type]; !ok {
		t.byType[c.Type] = c.QualifiedName()
	}
}

var defaultTable = NewTable()

// Default returns the process-global module table, the conventional target
// for init-time registration.
func Default() *Table { return defaultTable }

// Module is shorthand for Default().Module(name).
func Module(name string) *Namespace { return defaultTable.Module(name) }
