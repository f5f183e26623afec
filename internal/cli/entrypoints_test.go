package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePluginManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plugin.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEntrypointsCommandTable(t *testing.T) {
	root := t.TempDir()
	writePluginManifest(t, filepath.Join(root, "acme"), `
name: acme-filters
version: "1.0.0"
entry_points:
  class_lister:
    - name: filters
      ref: acme.filters:ListClasses
`)

	out, err := runCommand(t, "entrypoints", "--group", "class_lister", root)
	if err != nil {
		t.Fatalf("entrypoints: %v", err)
	}
	if !strings.Contains(out, "acme.filters:ListClasses") {
		t.Errorf("output missing entry point ref:\n%s", out)
	}
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "REF") {
		t.Errorf("output missing table header:\n%s", out)
	}
}

func TestEntrypointsCommandJSON(t *testing.T) {
	root := t.TempDir()
	writePluginManifest(t, filepath.Join(root, "acme"), `
name: acme-filters
version: "1.0.0"
entry_points:
  class_lister:
    - name: filters
      ref: acme.filters:ListClasses
`)

	out, err := runCommand(t, "entrypoints", "--group", "class_lister", "--json", root)
	if err != nil {
		t.Fatalf("entrypoints --json: %v", err)
	}
	if !strings.Contains(out, `"ref": "acme.filters:ListClasses"`) {
		t.Errorf("JSON output missing ref:\n%s", out)
	}
	entrypointsJSON = false
}

func TestEntrypointsCommandEmptyGroup(t *testing.T) {
	root := t.TempDir()
	writePluginManifest(t, filepath.Join(root, "acme"), `
name: acme-filters
version: "1.0.0"
`)

	out, err := runCommand(t, "entrypoints", "--group", "class_lister", root)
	if err != nil {
		t.Fatalf("entrypoints: %v", err)
	}
	if !strings.Contains(out, "No entry points found") {
		t.Errorf("expected empty-group message, got:\n%s", out)
	}
}
