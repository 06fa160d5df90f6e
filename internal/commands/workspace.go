package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/reconcile-dev/reconcile/internal/api"
	"github.com/reconcile-dev/reconcile/internal/config"
	"github.com/reconcile-dev/reconcile/internal/money"
	"github.com/reconcile-dev/reconcile/internal/session"
)

var hundred = decimal.NewFromInt(100)

// workspace bundles the loaded config and the session controller for one
// CLI invocation.
type workspace struct {
	cfg  *config.Config
	ctrl *session.Controller
}

func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []api.Option
	if cfg.Backend.CSRFToken != "" {
		opts = append(opts, api.WithCSRFToken(cfg.Backend.CSRFToken))
	}
	if cfg.Backend.TimeoutSeconds > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second))
	}

	client := api.NewClient(cfg.Backend.BaseURL, opts...)
	return &workspace{cfg: cfg, ctrl: session.NewController(client)}, nil
}

// loadSession resolves the account (flag, then config default, then the
// backend's default) and loads the session aggregate.
func (w *workspace) loadSession(ctx context.Context, accountID, periodID string) (session.PageState, error) {
	if err := w.ctrl.LoadConfig(ctx); err != nil {
		return session.PageState{}, err
	}

	st := w.ctrl.State()
	if !st.CanReconcile {
		reason := st.CapabilityReason
		if reason == "" {
			reason = "reconciliation is not available for this organization"
		}
		return session.PageState{}, fmt.Errorf("cannot reconcile: %s", reason)
	}

	if accountID == "" {
		accountID = w.cfg.Defaults.BankAccountID
	}
	if accountID == "" {
		accountID = st.SelectedAccountID
	}
	if accountID == "" {
		return session.PageState{}, fmt.Errorf("no bank account available; run `reconcile accounts`")
	}

	if err := w.ctrl.LoadSession(ctx, accountID, periodID); err != nil {
		return session.PageState{}, err
	}
	return w.ctrl.State(), nil
}

// printStatus renders the session summary and the completion gate.
func printStatus(st session.PageState) {
	sess := st.Session
	if sess == nil {
		fmt.Println("No session loaded.")
		return
	}

	cur := sess.BankAccount.Currency
	fmt.Printf("Account:     %s (%s)\n", sess.BankAccount.Name, sess.BankAccount.ID)
	fmt.Printf("Period:      %s\n", sess.Period.Label)
	fmt.Printf("Status:      %s\n", sess.Status)
	fmt.Printf("Beginning:   %s\n", money.Format(sess.BeginningBalance, cur))
	fmt.Printf("Ending:      %s\n", money.Format(sess.EndingBalance, cur))
	fmt.Printf("Cleared:     %s\n", money.Format(sess.ClearedBalance, cur))
	fmt.Printf("Difference:  %s\n", money.FormatSigned(sess.Difference, cur))
	fmt.Printf("Reconciled:  %s%% (%d of %d, %d unreconciled, %d excluded)\n",
		sess.ReconciledPercent.StringFixed(1), sess.TotalTransactions-sess.UnreconciledCount,
		sess.TotalTransactions, sess.UnreconciledCount, sess.ExcludedCount)
	if st.SoftLocked {
		fmt.Println("Nearly done: 99.5%+ reconciled.")
	}

	switch {
	case st.Completed():
		fmt.Println("Session is completed. Use `reconcile reopen --yes` to make changes.")
	case st.CanComplete():
		fmt.Println("Complete period: ready (difference is zero).")
	default:
		fmt.Printf("Complete period: blocked (difference %s must be zero).\n",
			money.FormatSigned(sess.Difference, cur))
	}
}
