// Package registry builds an index from abstract base types to the concrete
// types implementing them. At construction it discovers the class-lister
// functions declared for a discovery group (via a metadata.Provider, or via
// an environment-variable override) and merges their superclass→modules
// mappings. On query it scans the declared modules through a
// modules.Importer, filters candidates by the subtype relation, and caches
// the resulting ordered class list per superclass for the lifetime of the
// Registry. Picking up newly installed plugins requires constructing a new
// Registry.
package registry
