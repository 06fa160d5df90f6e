package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/reconcile-dev/reconcile/internal/model"
)

// TransactionScope selects which rows the feed endpoint returns.
type TransactionScope string

const (
	ScopeAll          TransactionScope = "ALL"
	ScopeUnreconciled TransactionScope = "UNRECONCILED"
)

// SessionEnvelope is the session read-path payload: the aggregate plus the
// periods selectable for its account.
type SessionEnvelope struct {
	Session model.ReconciliationSession
	Periods []model.PeriodOption
}

// GetConfig fetches the available bank accounts and the reconcile
// capability flag.
func (c *Client) GetConfig(ctx context.Context) (model.ReconciliationConfig, error) {
	var dto struct {
		Accounts     []accountDTO `json:"accounts"`
		CanReconcile bool         `json:"can_reconcile"`
		Reason       string       `json:"reason"`
	}
	if err := c.get(ctx, "/api/reconciliation/config/", nil, &dto); err != nil {
		return model.ReconciliationConfig{}, err
	}

	cfg := model.ReconciliationConfig{
		CanReconcile: dto.CanReconcile,
		Reason:       dto.Reason,
	}
	for _, a := range dto.Accounts {
		cfg.Accounts = append(cfg.Accounts, a.toDomain())
	}
	return cfg, nil
}

// GetSession fetches the session aggregate for an account and period.
// An empty periodID asks the backend to resolve the current period.
func (c *Client) GetSession(ctx context.Context, bankAccountID, periodID string) (SessionEnvelope, error) {
	q := url.Values{"bank_account_id": {bankAccountID}}
	if periodID != "" {
		q.Set("period_id", periodID)
	}

	var dto sessionDTO
	if err := c.get(ctx, "/api/reconciliation/session/", q, &dto); err != nil {
		return SessionEnvelope{}, err
	}

	session, periods, err := dto.toDomain()
	if err != nil {
		return SessionEnvelope{}, fmt.Errorf("session payload: %w", err)
	}
	return SessionEnvelope{Session: session, Periods: periods}, nil
}

// ListTransactions fetches the transaction feed for an account.
func (c *Client) ListTransactions(ctx context.Context, bankAccountID string, scope TransactionScope) ([]model.BankTransaction, error) {
	path := fmt.Sprintf("/api/bank-accounts/%s/reconciliation/transactions/", url.PathEscape(bankAccountID))
	q := url.Values{"status": {string(scope)}}

	var dtos []transactionDTO
	if err := c.get(ctx, path, q, &dtos); err != nil {
		return nil, err
	}

	txs := make([]model.BankTransaction, 0, len(dtos))
	for i, d := range dtos {
		tx, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ListMatches fetches the match candidates for one transaction.
func (c *Client) ListMatches(ctx context.Context, transactionID string) ([]model.MatchCandidate, error) {
	q := url.Values{"transaction_id": {transactionID}}

	var dtos []candidateDTO
	if err := c.get(ctx, "/api/reconciliation/matches/", q, &dtos); err != nil {
		return nil, err
	}

	candidates := make([]model.MatchCandidate, 0, len(dtos))
	for i, d := range dtos {
		cand, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

// ConfirmMatchParams identifies the transaction/journal-entry pair to match.
type ConfirmMatchParams struct {
	BankTransactionID string          `json:"bank_transaction_id"`
	JournalEntryID    string          `json:"journal_entry_id"`
	MatchConfidence   decimal.Decimal `json:"match_confidence"`
}

// ConfirmMatch applies a user-confirmed match candidate.
func (c *Client) ConfirmMatch(ctx context.Context, params ConfirmMatchParams) error {
	return c.post(ctx, "/api/reconciliation/confirm-match/", params, nil)
}

// ToggleIncludeParams flips whether a transaction counts toward the
// session's cleared balance.
type ToggleIncludeParams struct {
	TransactionID string `json:"transaction_id"`
	SessionID     string `json:"session_id"`
	Included      bool   `json:"included"`
}

// ToggleInclude posts an inclusion flip.
func (c *Client) ToggleInclude(ctx context.Context, params ToggleIncludeParams) error {
	return c.post(ctx, "/api/reconciliation/toggle-include/", params, nil)
}

// SplitParams is one allocation line of a split submission.
type SplitParams struct {
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CreateSplitParams is the atomic split submission for one transaction.
type CreateSplitParams struct {
	BankTransactionID string        `json:"bank_transaction_id"`
	Splits            []SplitParams `json:"splits"`
}

// CreateSplit submits a balanced allocation. The backend decides whether
// the resulting status is PARTIAL or RECONCILED.
func (c *Client) CreateSplit(ctx context.Context, params CreateSplitParams) error {
	return c.post(ctx, "/api/reconciliation/create-split/", params, nil)
}

// CreateAdjustmentParams posts a fee/interest correction against a session.
type CreateAdjustmentParams struct {
	SessionID   string          `json:"session_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	AccountName string          `json:"account_name"`
}

// CreateAdjustment records a manual correction against the session.
func (c *Client) CreateAdjustment(ctx context.Context, params CreateAdjustmentParams) error {
	return c.post(ctx, "/api/reconciliation/create-adjustment/", params, nil)
}

// Unmatch reverses a prior match, moving the transaction back toward NEW.
func (c *Client) Unmatch(ctx context.Context, sessionID, transactionID string) error {
	path := fmt.Sprintf("/api/reconciliation/session/%s/unmatch/", url.PathEscape(sessionID))
	body := struct {
		TransactionID string `json:"transaction_id"`
	}{transactionID}
	return c.post(ctx, path, body, nil)
}

// SetExcluded marks a transaction excluded from (or restored to) the feed.
func (c *Client) SetExcluded(ctx context.Context, sessionID, transactionID string, excluded bool) error {
	path := fmt.Sprintf("/api/reconciliation/session/%s/exclude/", url.PathEscape(sessionID))
	body := struct {
		TransactionID string `json:"transaction_id"`
		Excluded      bool   `json:"excluded"`
	}{transactionID, excluded}
	return c.post(ctx, path, body, nil)
}

// Complete marks a session completed. The backend re-validates the balance
// gate regardless of what the client checked.
func (c *Client) Complete(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/api/reconciliation/sessions/%s/complete/", url.PathEscape(sessionID))
	return c.post(ctx, path, nil, nil)
}

// Reopen transitions a completed session back to IN_PROGRESS.
func (c *Client) Reopen(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/api/reconciliation/sessions/%s/reopen/", url.PathEscape(sessionID))
	return c.post(ctx, path, nil, nil)
}
