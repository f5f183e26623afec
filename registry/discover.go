package registry

import (
	"fmt"
	"os"

	"github.com/plugdex-labs/plugdex/modules"
)

// discoverListers resolves the configured class-lister references into
// invocable functions, in discovery order.
//
// Precedence: when the override variable is set and non-empty its references
// are used exclusively — metadata discovery is bypassed entirely, which
// eases local development before a plugin is packaged. Otherwise explicit
// Config.Listers win over the Provider. Exclusions apply to every source.
func discoverListers(cfg Config, imp modules.Importer) ([]Lister, error) {
	refs, err := collectRefs(cfg)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool)
	for _, ref := range cfg.ExcludedListers {
		excluded[ref] = true
	}
	if cfg.ExcludedEnvVar != "" {
		for _, ref := range modules.SplitRefList(os.Getenv(cfg.ExcludedEnvVar)) {
			excluded[ref] = true
		}
	}

	seen := make(map[string]bool)
	var listers []Lister
	for _, ref := range refs {
		if excluded[ref] || seen[ref] {
			continue
		}
		seen[ref] = true

		lister, err := resolveLister(imp, ref)
		if err != nil {
			return nil, &DiscoveryError{Ref: ref, Cause: err}
		}
		listers = append(listers, lister)
	}
	return listers, nil
}

// collectRefs returns the raw references from the highest-precedence source.
func collectRefs(cfg Config) ([]string, error) {
	if cfg.EnvVar != "" {
		if v := os.Getenv(cfg.EnvVar); v != "" {
			return modules.SplitRefList(v), nil
		}
	}

	if len(cfg.Listers) > 0 {
		return cfg.Listers, nil
	}

	if cfg.Provider == nil {
		return nil, nil
	}

	group := cfg.Group
	if group == "" {
		group = DefaultGroup
	}
	entries, err := cfg.Provider.List(group)
	if err != nil {
		return nil, fmt.Errorf("listing entry points for group %q: %w", group, err)
	}

	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		refs = append(refs, e.Ref)
	}
	return refs, nil
}

// resolveLister imports the module named in ref and looks up the lister
// function.
func resolveLister(imp modules.Importer, ref string) (Lister, error) {
	moduleName, fnName, err := modules.SplitRef(ref)
	if err != nil {
		return nil, err
	}

	ns, err := imp.Import(moduleName)
	if err != nil {
		return nil, err
	}

	sym, ok := ns.Lookup(fnName)
	if !ok {
		return nil, fmt.Errorf("module %q has no member %q", moduleName, fnName)
	}
	fn, ok := sym.(modules.Func)
	if !ok {
		return nil, fmt.Errorf("member %q of module %q is not a function", fnName, moduleName)
	}
	lister, ok := fn.Value.(func() map[string][]string)
	if !ok {
		return nil, fmt.Errorf("member %q of module %q is not a class lister (func() map[string][]string)", fnName, moduleName)
	}
	return lister, nil
}
