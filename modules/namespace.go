package modules

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Namespace holds the members a module exports. Registration happens once at
// startup (init functions); lookups happen afterwards, so members are stored
// unsynchronized and the owning Table serializes registration.
type Namespace struct {
	name    string
	table   *Table
	members map[string]Symbol
}

func newNamespace(name string) *Namespace {
	return &Namespace{name: name, members: make(map[string]Symbol)}
}

// Name returns the dotted module name of the namespace.
func (ns *Namespace) Name() string { return ns.name }

// DefineClass registers a type under the given member name, defined by this
// module. The prototype may be a value, a pointer to a value, or a
// reflect.Type; interface types must be passed as a reflect.Type (e.g.
// reflect.TypeOf((*Filter)(nil)).Elem()). Redefining a name panics: two
// definitions for one member indicate a wiring bug in the plugin package.
func (ns *Namespace) DefineClass(name string, prototype any) *Namespace {
	c := Class{Name: name, Module: ns.name, Type: typeOf(prototype)}
	ns.add(c)
	if ns.table != nil {
		ns.table.index(c)
	}
	return ns
}

// Reexport registers a class from another module into this namespace. The
// defining module recorded on the class is preserved, so scans of this
// module skip it.
func (ns *Namespace) Reexport(c Class) *Namespace {
	ns.add(Class{Name: c.Name, Module: c.Module, Type: c.Type})
	return ns
}

// DefineFunc registers a function under the given member name.
func (ns *Namespace) DefineFunc(name string, fn any) *Namespace {
	if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		panic(fmt.Sprintf("modules: %s.%s is not a function", ns.name, name))
	}
	ns.add(Func{Name: name, Module: ns.name, Value: fn})
	return ns
}

func (ns *Namespace) add(s Symbol) {
	name := s.SymbolName()
	if name == "" {
		panic(fmt.Sprintf("modules: empty member name in module %s", ns.name))
	}
	if strings.Contains(name, ".") || strings.Contains(name, ":") {
		panic(fmt.Sprintf("modules: invalid member name %q in module %s", name, ns.name))
	}
	if _, exists := ns.members[name]; exists {
		panic(fmt.Sprintf("modules: duplicate member %s in module %s", name, ns.name))
	}
	ns.members[name] = s
}

// Lookup returns the member registered under name.
func (ns *Namespace) Lookup(name string) (Symbol, bool) {
	s, ok := ns.members[name]
	return s, ok
}

// Members returns all members sorted by name, so enumeration order is
// deterministic regardless of registration order.
func (ns *Namespace) Members() []Symbol {
	names := make([]string, 0, len(ns.members))
	for name := range ns.members {
		names = append(names, name)
	}
	sort.Strings(names)

	members := make([]Symbol, 0, len(names))
	for _, name := range names {
		members = append(members, ns.members[name])
	}
	return members
}

// typeOf normalizes a prototype into the concrete type it describes.
// Pointers are dereferenced one level so DefineClass("B", &B{}) and
// DefineClass("B", B{}) register the same type.
func typeOf(prototype any) reflect.Type {
	if t, ok := prototype.(reflect.Type); ok {
		return t
	}
	t := reflect.TypeOf(prototype)
	if t == nil {
		panic("modules: nil class prototype")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
