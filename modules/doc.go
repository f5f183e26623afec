// Package modules implements the in-process module table that stands in for
// a dynamic import mechanism. Plugin packages register their exported types
// and functions under dotted module names (e.g. "acme.filters"), typically
// from an init function, and the registry later imports those namespaces by
// name to enumerate candidate classes. The package also provides the
// qualified-name helpers and the polymorphic subtype check used to decide
// whether a candidate type implements a superclass.
package modules
