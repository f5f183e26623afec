package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plugdex-labs/plugdex/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest...>",
	Short: "Validate plugin manifest files",
	Long: `Validate one or more plugin manifest files against the manifest schema,
including semantic checks on the version field and entry-point references.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, path := range args {
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "[ OK ] %s\n", path)
			continue
		}

		invalid++
		fmt.Fprintf(cmd.OutOrStdout(), "[FAIL] %s\n", path)
		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "       %s: %s\n", loc, issue.Message)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d manifest(s) invalid", invalid, len(args))
	}
	return nil
}
