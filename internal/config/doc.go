// Package config manages user-level settings stored at ~/.plugdex/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the plugin source directories and the discovery group scanned for entry
// points.
package config
