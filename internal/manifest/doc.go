// Package manifest handles parsing and validation of plugin manifests.
// A manifest (plugin.yaml or manifest.yaml) describes one installed plugin
// package: its identity plus the entry points it declares per discovery
// group. Validation combines JSON Schema checks against the embedded schema
// with semantic checks (semver version field, module:function references).
package manifest
