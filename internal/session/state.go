package session

import (
	"github.com/reconcile-dev/reconcile/internal/balance"
	"github.com/reconcile-dev/reconcile/internal/model"
)

// PageState is the full, serializable state of the reconciliation
// workspace. The Controller owns the only copy; every action produces a new
// value rather than mutating in place.
type PageState struct {
	Accounts         []model.BankAccountSummary `json:"accounts,omitempty"`
	CanReconcile     bool                       `json:"can_reconcile"`
	CapabilityReason string                     `json:"capability_reason,omitempty"`

	SelectedAccountID string                       `json:"selected_account_id,omitempty"`
	SelectedPeriodID  string                       `json:"selected_period_id,omitempty"`
	Periods           []model.PeriodOption         `json:"periods,omitempty"`
	Session           *model.ReconciliationSession `json:"session,omitempty"`
	Transactions      []model.BankTransaction      `json:"transactions,omitempty"`

	Loading        bool `json:"loading"`
	MatchesLoading bool `json:"matches_loading"`
	SoftLocked     bool `json:"soft_locked"`

	// PageError comes from background loads; ActionError from a single
	// user action. Both are dismissible and neither blanks the snapshot.
	PageError   string `json:"page_error,omitempty"`
	ActionError string `json:"action_error,omitempty"`
}

// Completed reports whether the loaded session is COMPLETED, the
// authoritative lock on every mutator except reopen.
func (s PageState) Completed() bool {
	return s.Session != nil && s.Session.Status == model.SessionCompleted
}

// CanComplete is the completion gate: a loaded, not-yet-completed session
// whose difference is zero within the shared epsilon.
func (s PageState) CanComplete() bool {
	if s.Session == nil || s.Completed() {
		return false
	}
	return balance.WithinEpsilon(s.Session.Difference)
}

// CanReopen reports whether reopen is the available transition. Only a
// completed session can reopen; a draft was never completed.
func (s PageState) CanReopen() bool {
	return s.Completed()
}

// Transaction returns the feed row with the given id.
func (s PageState) Transaction(id string) (model.BankTransaction, bool) {
	for _, tx := range s.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.BankTransaction{}, false
}

// clone returns a copy whose slices are safe to modify.
func (s PageState) clone() PageState {
	out := s
	out.Accounts = append([]model.BankAccountSummary(nil), s.Accounts...)
	out.Periods = append([]model.PeriodOption(nil), s.Periods...)
	out.Transactions = append([]model.BankTransaction(nil), s.Transactions...)
	if s.Session != nil {
		sess := *s.Session
		out.Session = &sess
	}
	return out
}
