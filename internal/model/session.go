package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus represents the lifecycle state of a reconciliation session.
type SessionStatus string

const (
	SessionDraft      SessionStatus = "DRAFT"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
)

// BankAccountSummary is immutable reference data for one reconcilable account.
type BankAccountSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bank      string `json:"bank,omitempty"`
	Currency  string `json:"currency"`
	IsDefault bool   `json:"is_default"`
}

// PeriodOption is one selectable statement period for an account.
// A period is locked once its session has been completed and not reopened;
// locked periods stay selectable but mutating actions are disabled.
type PeriodOption struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsCurrent bool      `json:"is_current"`
	IsLocked  bool      `json:"is_locked"`
}

// ReconciliationSession is one reconciliation attempt for a
// (bank account, statement period) pair. ClearedBalance, Difference and
// ReconciledPercent are server-derived: the client displays the returned
// figures and never persists a locally computed value.
type ReconciliationSession struct {
	ID                string             `json:"id"`
	Status            SessionStatus      `json:"status"`
	BankAccount       BankAccountSummary `json:"bank_account"`
	Period            PeriodOption       `json:"period"`
	BeginningBalance  decimal.Decimal    `json:"beginning_balance"`
	EndingBalance     decimal.Decimal    `json:"ending_balance"`
	ClearedBalance    decimal.Decimal    `json:"cleared_balance"`
	Difference        decimal.Decimal    `json:"difference"`
	ReconciledPercent decimal.Decimal    `json:"reconciled_percent"`
	TotalTransactions int                `json:"total_transactions"`
	UnreconciledCount int                `json:"unreconciled_count"`
	ExcludedCount     int                `json:"excluded_count"`
}

// ReconciliationConfig is the capability payload fetched before any session.
type ReconciliationConfig struct {
	Accounts     []BankAccountSummary
	CanReconcile bool
	Reason       string
}
