package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plugdex-labs/plugdex/internal/config"
	"github.com/plugdex-labs/plugdex/metadata"
)

var (
	entrypointsGroup string
	entrypointsJSON  bool
)

var entrypointsCmd = &cobra.Command{
	Use:   "entrypoints [source-dir...]",
	Short: "List entry points declared by plugin manifests",
	Long: `Scan plugin source directories for manifests (plugin.yaml or manifest.yaml)
and list the entry points they declare for a discovery group. Source
directories come from the arguments, or from the "sources" config key when
no arguments are given.`,
	RunE: runEntrypoints,
}

func init() {
	entrypointsCmd.Flags().StringVar(&entrypointsGroup, "group", "", "Discovery group to list (default from config)")
	entrypointsCmd.Flags().BoolVar(&entrypointsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(entrypointsCmd)
}

// entrypointEntry represents one discovered entry point for display.
type entrypointEntry struct {
	Name string `json:"name"`
	Ref  string `json:"ref"`
}

func runEntrypoints(cmd *cobra.Command, args []string) error {
	dirs := args
	if len(dirs) == 0 {
		dirs = config.Sources()
	}
	if len(dirs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plugin sources configured. Pass directories or set the \"sources\" config key.")
		return nil
	}

	group := entrypointsGroup
	if group == "" {
		group = config.Group()
	}

	sources := make([]metadata.Source, 0, len(dirs))
	for _, dir := range dirs {
		sources = append(sources, metadata.Source{Name: dir, BasePath: dir})
	}

	entries, err := metadata.NewDirProvider(sources...).List(group)
	if err != nil {
		return fmt.Errorf("listing entry points for group %q: %w", group, err)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No entry points found for group %q.\n", group)
		return nil
	}

	display := make([]entrypointEntry, 0, len(entries))
	for _, e := range entries {
		display = append(display, entrypointEntry{Name: e.Name, Ref: e.Ref})
	}

	if entrypointsJSON {
		return printEntrypointsJSON(cmd, display)
	}
	return printEntrypointsTable(cmd, display)
}

func printEntrypointsTable(cmd *cobra.Command, entries []entrypointEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tREF")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Ref)
	}
	return w.Flush()
}

func printEntrypointsJSON(cmd *cobra.Command, entries []entrypointEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
