// Package cli defines the Cobra command tree for the plugdex CLI. Each file
// in this package registers one top-level command (entrypoints, validate,
// config, version) with the root command. Command implementations delegate
// to internal packages and the public library for business logic and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
