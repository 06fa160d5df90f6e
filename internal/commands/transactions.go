package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reconcile-dev/reconcile/internal/feed"
	"github.com/reconcile-dev/reconcile/internal/money"
)

func newTransactionsCommand() *cobra.Command {
	var account, period, status, search string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List the session's transaction feed",
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

			rows := feed.Filter(st.Transactions, status, search)
			if len(rows) == 0 {
				fmt.Println("No transactions match.")
				return nil
			}
			for _, tx := range rows {
				include := " "
				if tx.IncludedInSession {
					include = "x"
				}
				fmt.Printf("[%s] %-10s %s %-12s %-10s %s\n",
					include,
					tx.ID,
					tx.Date.Format("2006-01-02"),
					money.Format(tx.Amount, tx.Currency),
					tx.Status,
					describe(tx.Description, tx.Counterparty))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	cmd.Flags().StringVar(&status, "status", feed.StatusAll, "status filter (ALL, NEW, MATCHED, ...)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search")

	return cmd
}

func describe(description, counterparty string) string {
	if counterparty == "" {
		return description
	}
	return fmt.Sprintf("%s (%s)", description, counterparty)
}

func newMatchesCommand() *cobra.Command {
	var account, period string

	cmd := &cobra.Command{
		Use:   "matches <transaction-id>",
		Short: "List match candidates for a transaction",
		Args:  cobra.ExactArgs(1),
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
			if len(candidates) == 0 {
				fmt.Println("No candidates.")
				return nil
			}
			for _, c := range candidates {
				fmt.Printf("%-12s %s %-12s %3s%% %-12s %s\n",
					c.JournalEntryID,
					c.Date.Format("2006-01-02"),
					c.Amount.StringFixed(2),
					c.Confidence.Mul(hundred).StringFixed(0),
					c.MatchType,
					c.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")

	return cmd
}
