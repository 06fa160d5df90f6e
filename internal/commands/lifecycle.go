package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reconcile-dev/reconcile/internal/money"
	"github.com/reconcile-dev/reconcile/internal/session"
)

func newCompleteCommand() *cobra.Command {
	var account, period string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Complete the period once the difference is zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			st, err := w.loadSession(cmd.Context(), account, period)
			if err != nil {
				return err
			}

			err = w.ctrl.Complete(cmd.Context())
			if errors.Is(err, session.ErrNotBalanced) && st.Session != nil {
				return fmt.Errorf("cannot complete: difference is %s, must be zero",
					money.FormatSigned(st.Session.Difference, st.Session.BankAccount.Currency))
			}
			if err != nil {
				return err
			}

			fmt.Println("Period completed.")
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	return cmd
}

func newReopenCommand() *cobra.Command {
	var account, period string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reopen",
		Short: "Reopen a completed session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reopening re-enables all mutations for a completed period; pass --yes to confirm")
			}

			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if _, err := w.loadSession(cmd.Context(), account, period); err != nil {
				return err
			}
			if err := w.ctrl.Reopen(cmd.Context(), yes); err != nil {
				return err
			}

			fmt.Println("Session reopened.")
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reopen")
	return cmd
}
