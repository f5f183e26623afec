package manifest

// FileNames are the recognized manifest file names, in priority order.
var FileNames = []string{"plugin.yaml", "manifest.yaml"}

// Manifest describes one plugin package and the entry points it declares.
type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Vendor      *string  `yaml:"vendor,omitempty" json:"vendor,omitempty"`

	// EntryPoints maps a discovery group (e.g. "class_lister") to the
	// ordered references the plugin registers under that group. Lists keep
	// declaration order; discovery depends on it being stable.
	EntryPoints map[string][]EntryPoint `yaml:"entry_points,omitempty" json:"entry_points,omitempty"`
}

// EntryPoint is one named reference, the manifest form of the
// "name=module:function" contract.
type EntryPoint struct {
	Name string `yaml:"name" json:"name"`
	Ref  string `yaml:"ref" json:"ref"`
}

// Group returns the entry points declared under the given discovery group,
// in declaration order.
func (m *Manifest) Group(group string) []EntryPoint {
	return m.EntryPoints[group]
}
