package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToggleCommand() *cobra.Command {
	var account, period string

	cmd := &cobra.Command{
		Use:   "toggle <transaction-id>",
		Short: "Flip whether a transaction counts toward the cleared balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if _, err := w.loadSession(cmd.Context(), account, period); err != nil {
				return err
			}
			if err := w.ctrl.ToggleInclude(cmd.Context(), args[0]); err != nil {
				return err
			}
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	return cmd
}

func newExcludeCommand() *cobra.Command {
	var account, period string
	var restore bool

	cmd := &cobra.Command{
		Use:   "exclude <transaction-id>",
		Short: "Exclude a transaction from the feed (or restore it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if _, err := w.loadSession(cmd.Context(), account, period); err != nil {
				return err
			}
			if err := w.ctrl.SetExcluded(cmd.Context(), args[0], !restore); err != nil {
				return err
			}
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	cmd.Flags().BoolVar(&restore, "restore", false, "restore a previously excluded transaction")
	return cmd
}

func newMatchCommand() *cobra.Command {
	var account, period string

	cmd := &cobra.Command{
		Use:   "match <transaction-id> <journal-entry-id>",
		Short: "Confirm a match candidate for a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if _, err := w.loadSession(cmd.Context(), account, period); err != nil {
				return err
			}

			candidates, err := w.ctrl.OpenMatches(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, c := range candidates {
				if c.JournalEntryID == args[1] {
					if err := w.ctrl.ConfirmMatch(cmd.Context(), args[0], c); err != nil {
						return err
					}
					printStatus(w.ctrl.State())
					return nil
				}
			}
			return fmt.Errorf("journal entry %s is not a candidate for %s", args[1], args[0])
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	return cmd
}

func newUnmatchCommand() *cobra.Command {
	var account, period string

	cmd := &cobra.Command{
		Use:   "unmatch <transaction-id>",
		Short: "Reverse a prior match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if _, err := w.loadSession(cmd.Context(), account, period); err != nil {
				return err
			}
			if err := w.ctrl.Unmatch(cmd.Context(), args[0]); err != nil {
				return err
			}
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	return cmd
}
