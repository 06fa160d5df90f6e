package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reconcile-dev/reconcile/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "reconcile",
		Short:   "Bank reconciliation workspace client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "reconcile.yaml", "path to workspace config")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newMatchesCommand())
	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newUnmatchCommand())
	rootCmd.AddCommand(newToggleCommand())
	rootCmd.AddCommand(newExcludeCommand())
	rootCmd.AddCommand(newSplitCommand())
	rootCmd.AddCommand(newAdjustCommand())
	rootCmd.AddCommand(newCompleteCommand())
	rootCmd.AddCommand(newReopenCommand())

	return rootCmd
}
