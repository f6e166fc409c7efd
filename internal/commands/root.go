package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finstat-dev/finstat/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finstat",
		Short:   "Personal financial statement dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
