package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	var account, period string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the reconciliation session for an account and period",
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
			printStatus(st)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id (default: current)")

	return cmd
}

func newAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List reconcilable bank accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if err := w.ctrl.LoadConfig(cmd.Context()); err != nil {
				return err
			}

			st := w.ctrl.State()
			if !st.CanReconcile {
				fmt.Printf("Reconciliation unavailable: %s\n", st.CapabilityReason)
			}
			for _, a := range st.Accounts {
				marker := " "
				if a.IsDefault {
					marker = "*"
				}
				label := a.Name
				if a.Bank != "" {
					label += " - " + a.Bank
				}
				fmt.Printf("%s %-12s %s (%s)\n", marker, a.ID, label, a.Currency)
			}
			return nil
		},
	}
}
