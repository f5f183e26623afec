// Package metadata abstracts the package-metadata side of plugin discovery.
// A Provider enumerates the entry points registered under a named discovery
// group. DirProvider reads them from plugin manifests found under configured
// source directories; StaticProvider serves a fixed in-memory list, which is
// also the natural test double.
package metadata
