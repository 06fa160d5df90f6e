package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reconcile-dev/reconcile/internal/config"
)

func newInitCommand() *cobra.Command {
	var backendURL string
	var account string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a reconcile workspace config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, backendURL, account)
		},
	}

	cmd.Flags().StringVar(&backendURL, "backend", "", "backend base URL (required)")
	_ = cmd.MarkFlagRequired("backend")
	cmd.Flags().StringVar(&account, "account", "", "default bank account id")

	return cmd
}

func runInit(dir, backendURL, account string) error {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default(backendURL)
	cfg.Defaults.BankAccountID = account
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized reconcile workspace at %s\n", path)
	return nil
}
