package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/reconcile-dev/reconcile/internal/model"
	"github.com/reconcile-dev/reconcile/internal/split"
)

func newSplitCommand() *cobra.Command {
	var account, period string
	var lines []string

	cmd := &cobra.Command{
		Use:   "split <transaction-id>",
		Short: "Allocate one transaction across multiple ledger accounts",
		Long: `Allocate one transaction across multiple ledger accounts.

Each --line takes account:amount[:description]. The absolute line amounts
must sum to the absolute transaction amount before anything is submitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			st, err := w.loadSession(cmd.Context(), account, period)
			if err != nil {
				return err
			}

			tx, ok := st.Transaction(args[0])
			if !ok {
				return fmt.Errorf("transaction %s not in current session", args[0])
			}

			composer := split.NewComposer(tx)
			for _, raw := range lines {
				accountID, amount, desc, err := parseSplitLine(raw)
				if err != nil {
					return err
				}
				composer.AddLine(accountID, amount, desc)
			}

			if err := w.ctrl.CreateSplit(cmd.Context(), composer); err != nil {
				return err
			}
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "allocation line account:amount[:description] (repeatable)")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

func parseSplitLine(raw string) (accountID string, amount decimal.Decimal, desc string, err error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return "", decimal.Zero, "", fmt.Errorf("invalid --line %q: want account:amount[:description]", raw)
	}
	amount, err = decimal.NewFromString(parts[1])
	if err != nil {
		return "", decimal.Zero, "", fmt.Errorf("invalid amount in --line %q: %w", raw, err)
	}
	if len(parts) == 3 {
		desc = parts[2]
	}
	return parts[0], amount, desc, nil
}

func newAdjustCommand() *cobra.Command {
	var account, period string
	var adjType, amountStr, targetAccount string

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Post a bank-fee or interest adjustment against the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amountStr, err)
			}
			kind, err := parseAdjustmentType(adjType)
			if err != nil {
				return err
			}

			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if _, err := w.loadSession(cmd.Context(), account, period); err != nil {
				return err
			}

			adj := model.Adjustment{Type: kind, Amount: amount, AccountName: targetAccount}
			if err := w.ctrl.CreateAdjustment(cmd.Context(), adj); err != nil {
				return err
			}
			printStatus(w.ctrl.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "bank account id")
	cmd.Flags().StringVar(&period, "period", "", "statement period id")
	cmd.Flags().StringVar(&adjType, "type", "", "fee, interest or other (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&amountStr, "amount", "", "signed adjustment amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&targetAccount, "target", "", "target ledger account label (required)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func parseAdjustmentType(s string) (model.AdjustmentType, error) {
	switch strings.ToLower(s) {
	case "fee", "bank_fee":
		return model.AdjustmentBankFee, nil
	case "interest", "interest_income":
		return model.AdjustmentInterestIncome, nil
	case "other":
		return model.AdjustmentOther, nil
	default:
		return "", fmt.Errorf("unknown adjustment type %q: want fee, interest or other", s)
	}
}
