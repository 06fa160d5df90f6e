package model

import "github.com/shopspring/decimal"

// SplitLine is one allocation line in a split working set. LocalID exists
// only client-side; the server assigns its own ids on submit.
type SplitLine struct {
	LocalID     string          `json:"local_id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// AdjustmentType classifies a manual session correction.
type AdjustmentType string

const (
	AdjustmentBankFee        AdjustmentType = "BANK_FEE"
	AdjustmentInterestIncome AdjustmentType = "INTEREST_INCOME"
	AdjustmentOther          AdjustmentType = "OTHER"
)

// Adjustment is a fee/interest-style correction posted directly against a
// session. Submitted atomically; the session reload reflects its effect on
// the cleared balance.
type Adjustment struct {
	Type        AdjustmentType  `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	AccountName string          `json:"account_name"`
}
