package metadata

import (
	"os"
	"path/filepath"

	"github.com/plugdex-labs/plugdex/internal/manifest"
)

// Source is one location to search for plugin manifests.
type Source struct {
	Name     string // e.g. "installed", "workspace"
	BasePath string // absolute path to the source root
}

// DirProvider discovers entry points by scanning source directories for
// plugin manifests (plugin.yaml or manifest.yaml). Directory walks are
// lexical and manifest entry-point lists keep declaration order, so the
// discovery order seen by the registry is deterministic for a given
// on-disk state. Manifests that fail to parse or validate are skipped;
// `plugdex validate` reports them.
type DirProvider struct {
	sources []Source
}

// NewDirProvider returns a provider scanning the given sources in order.
// Earlier sources take priority when two manifests declare the same
// plugin name.
func NewDirProvider(sources ...Source) *DirProvider {
	return &DirProvider{sources: sources}
}

// List implements Provider.
func (p *DirProvider) List(group string) ([]Entry, error) {
	var entries []Entry
	seenPlugin := make(map[string]bool)

	for _, src := range p.sources {
		manifests, err := findManifests(src.BasePath)
		if err != nil {
			continue // skip inaccessible sources
		}
		for _, path := range manifests {
			m, err := parseValid(path)
			if err != nil {
				continue
			}
			if m.Name != "" && seenPlugin[m.Name] {
				continue
			}
			seenPlugin[m.Name] = true
			for _, ep := range m.Group(group) {
				entries = append(entries, Entry{Name: ep.Name, Ref: ep.Ref})
			}
		}
	}

	return entries, nil
}

// parseValid parses a manifest and rejects it if schema validation fails.
func parseValid(path string) (*manifest.Manifest, error) {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &invalidManifestError{path: path}
	}
	return manifest.Parse(path)
}

type invalidManifestError struct{ path string }

func (e *invalidManifestError) Error() string {
	return "invalid manifest: " + e.path
}

// findManifests walks a source root and returns manifest paths in lexical
// order, one per directory (plugin.yaml beats manifest.yaml).
func findManifests(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	byDir := make(map[string]string)
	var dirs []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() || !manifest.IsManifestFile(d.Name()) {
			return nil
		}

		dir := filepath.Dir(path)
		existing, ok := byDir[dir]
		if !ok {
			byDir[dir] = path
			dirs = append(dirs, dir)
			return nil
		}
		if rank(d.Name()) < rank(filepath.Base(existing)) {
			byDir[dir] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, byDir[dir])
	}
	return paths, nil
}

// rank orders manifest file names by priority (lower wins).
func rank(name string) int {
	for i, fn := range manifest.FileNames {
		if name == fn {
			return i
		}
	}
	return len(manifest.FileNames)
}
