package registry

import (
	"github.com/plugdex-labs/plugdex/metadata"
	"github.com/plugdex-labs/plugdex/modules"
)

// DefaultGroup is the discovery group class listers register under when the
// host does not choose its own.
const DefaultGroup = "class_lister"

// Lister is a class-lister function: it declares, per superclass qualified
// name, the ordered modules to scan for implementations.
type Lister func() map[string][]string

// Config controls discovery for one Registry.
type Config struct {
	// Group is the discovery group queried on the Provider.
	// Empty means DefaultGroup.
	Group string

	// EnvVar names an environment variable holding a comma-separated list
	// of module:function references. When set and non-empty, these
	// references replace all other discovery.
	EnvVar string

	// Listers are explicit module:function references. When non-empty and
	// the env override is absent, they replace provider discovery.
	Listers []string

	// ExcludedListers are module:function references to skip, whatever
	// their discovery source.
	ExcludedListers []string

	// ExcludedEnvVar names an environment variable holding a
	// comma-separated list of additional references to skip.
	ExcludedEnvVar string

	// Provider enumerates entry points for Group. Unset means no metadata
	// discovery.
	Provider metadata.Provider

	// Importer resolves module names. Unset means modules.Default().
	Importer modules.Importer
}
