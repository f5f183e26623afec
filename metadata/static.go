package metadata

// StaticProvider serves entry points from a fixed in-memory table, keyed by
// group. Hosts that know their plugins at compile time can use it instead of
// manifest scanning; tests use it for isolation.
type StaticProvider struct {
	groups map[string][]Entry
}

// NewStaticProvider returns an empty StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{groups: make(map[string][]Entry)}
}

// Add appends an entry to a group, preserving insertion order.
func (p *StaticProvider) Add(group, name, ref string) *StaticProvider {
	p.groups[group] = append(p.groups[group], Entry{Name: name, Ref: ref})
	return p
}

// List implements Provider.
func (p *StaticProvider) List(group string) ([]Entry, error) {
	entries := p.groups[group]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}
