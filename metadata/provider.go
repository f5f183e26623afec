package metadata

// Entry is one registered entry point: a short name plus a module:function
// reference, the wire form of "name=module:function".
type Entry struct {
	Name string
	Ref  string
}

// Provider enumerates registered entry points for a discovery group. The
// order of the returned entries must be stable across calls: the registry's
// resolution results are only deterministic if discovery order is.
type Provider interface {
	List(group string) ([]Entry, error)
}
