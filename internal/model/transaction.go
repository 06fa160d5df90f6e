package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the match state of a bank transaction.
type TransactionStatus string

const (
	TxNew        TransactionStatus = "NEW"
	TxSuggested  TransactionStatus = "SUGGESTED"
	TxMatched    TransactionStatus = "MATCHED"
	TxPartial    TransactionStatus = "PARTIAL"
	TxReconciled TransactionStatus = "RECONCILED"
	TxExcluded   TransactionStatus = "EXCLUDED"
	TxIgnored    TransactionStatus = "IGNORED"
)

// MatchKind distinguishes how a MATCHED transaction was matched.
type MatchKind string

const (
	MatchNone   MatchKind = ""
	MatchSingle MatchKind = "SINGLE"
	MatchMulti  MatchKind = "MULTI"
)

// BankTransaction is one row of the session's transaction feed. Created by
// an external import process; this client only moves its status through
// toggle-include, confirm-match, unmatch, exclude and split actions.
type BankTransaction struct {
	ID                string            `json:"id"`
	Date              time.Time         `json:"date"`
	Description       string            `json:"description"`
	Counterparty      string            `json:"counterparty,omitempty"`
	Category          string            `json:"category,omitempty"`
	Amount            decimal.Decimal   `json:"amount"` // signed, negative = outflow
	Currency          string            `json:"currency"`
	Status            TransactionStatus `json:"status"`
	MatchKind         MatchKind         `json:"match_kind,omitempty"`
	MatchConfidence   decimal.Decimal   `json:"match_confidence,omitempty"` // 0..1, zero when absent
	IncludedInSession bool              `json:"included_in_session"`
}

// ParseTransactionStatus folds the backend's status spelling variants
// (MATCHED_SINGLE, MATCHED_MULTI) into one MATCHED status plus a MatchKind.
// Unknown statuses pass through unchanged so filters can still show them.
func ParseTransactionStatus(raw string) (TransactionStatus, MatchKind) {
	switch raw {
	case "MATCHED_SINGLE":
		return TxMatched, MatchSingle
	case "MATCHED_MULTI":
		return TxMatched, MatchMulti
	default:
		return TransactionStatus(raw), MatchNone
	}
}

// CountsAsMatched is the single policy point for "what counts as matched":
// MATCHED (any kind) and RECONCILED rows count toward the cleared side.
func CountsAsMatched(status TransactionStatus) bool {
	return status == TxMatched || status == TxReconciled
}
