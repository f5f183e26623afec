package cli

import (
	"github.com/spf13/cobra"

	"github.com/plugdex-labs/plugdex/internal/branding"
	"github.com/plugdex-labs/plugdex/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` indexes the concrete classes implementing abstract base types
across declared plugin modules, so host applications can discover plugins
without hard-coding import paths.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
