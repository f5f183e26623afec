package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/plugdex-labs/plugdex/modules"
)

// Registry owns the merged superclass→modules mapping (built eagerly at
// construction) and the per-superclass class index (built lazily, cached
// for the Registry's lifetime). Safe for concurrent use.
type Registry struct {
	imp     modules.Importer
	mapping map[string][]string

	mu       sync.Mutex
	index    map[string][]string
	resolved map[string]reflect.Type
	failures []ScanError
}

// New discovers the configured class listers, merges their mappings, and
// returns a ready Registry. An unresolvable lister reference fails
// construction with a DiscoveryError.
func New(cfg Config) (*Registry, error) {
	imp := cfg.Importer
	if imp == nil {
		imp = modules.Default()
	}

	listers, err := discoverListers(cfg, imp)
	if err != nil {
		return nil, err
	}

	return &Registry{
		imp:      imp,
		mapping:  mergeListers(listers),
		index:    make(map[string][]string),
		resolved: make(map[string]reflect.Type),
	}, nil
}

// Classes returns the qualified names of the concrete classes implementing
// the given superclass, in declared module order. A superclass no lister
// declared yields an empty result, not an error: absence of plugins is
// legitimate. The first query for a key resolves and scans; the result is
// cached and never rescanned for the Registry's lifetime.
func (r *Registry) Classes(superclass string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.index[superclass]; ok {
		return copyOf(cached), nil
	}

	moduleList, ok := r.mapping[superclass]
	if !ok {
		r.index[superclass] = nil
		return nil, nil
	}

	super, err := r.resolveSuperclass(superclass)
	if err != nil {
		return nil, &ResolutionError{Superclass: superclass, Cause: err}
	}

	var names []string
	seen := make(map[string]bool)
	for _, moduleName := range moduleList {
		classes, err := scanModule(r.imp, moduleName)
		if err != nil {
			r.failures = append(r.failures, ScanError{Module: moduleName, Cause: err})
			continue
		}
		for _, c := range classes {
			if !modules.Subtype(c.Type, super) {
				continue
			}
			qn := c.QualifiedName()
			if seen[qn] {
				continue
			}
			seen[qn] = true
			names = append(names, qn)
		}
	}

	r.index[superclass] = names
	return copyOf(names), nil
}

// ClassesOf is Classes for a superclass given as a value, pointer, or
// reflect.Type instead of a qualified name. It requires the Importer to
// support reverse lookup (modules.Namer), which the module table does.
func (r *Registry) ClassesOf(super any) ([]string, error) {
	namer, ok := r.imp.(modules.Namer)
	if !ok {
		return nil, fmt.Errorf("importer %T does not support reverse lookup", r.imp)
	}

	t, ok := super.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(super)
		if t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	if t == nil {
		return nil, fmt.Errorf("nil superclass")
	}

	name, ok := namer.NameOf(t)
	if !ok {
		return nil, fmt.Errorf("type %v is not registered in any module", t)
	}
	return r.Classes(name)
}

// Mapping returns a copy of the merged superclass→modules mapping.
func (r *Registry) Mapping() map[string][]string {
	out := make(map[string][]string, len(r.mapping))
	for super, moduleList := range r.mapping {
		out[super] = copyOf(moduleList)
	}
	return out
}

// Diagnostics returns the scan failures recorded so far. Failed module
// imports do not abort queries; they land here for inspection.
func (r *Registry) Diagnostics() []ScanError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ScanError, len(r.failures))
	copy(out, r.failures)
	return out
}

// resolveSuperclass imports the superclass's module and looks up its type,
// memoizing per key. Caller holds r.mu.
func (r *Registry) resolveSuperclass(superclass string) (reflect.Type, error) {
	if t, ok := r.resolved[superclass]; ok {
		return t, nil
	}

	moduleName, member, err := modules.SplitName(superclass)
	if err != nil {
		return nil, err
	}
	ns, err := r.imp.Import(moduleName)
	if err != nil {
		return nil, err
	}
	sym, ok := ns.Lookup(member)
	if !ok {
		return nil, fmt.Errorf("module %q has no member %q", moduleName, member)
	}
	c, ok := sym.(modules.Class)
	if !ok {
		return nil, fmt.Errorf("member %q of module %q is not a class", member, moduleName)
	}

	r.resolved[superclass] = c.Type
	return c.Type, nil
}

func copyOf(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
