package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchType classifies a candidate's cardinality.
type MatchType string

const (
	MatchOneToOne  MatchType = "ONE_TO_ONE"
	MatchOneToMany MatchType = "ONE_TO_MANY"
	MatchManyToOne MatchType = "MANY_TO_ONE"
)

// MatchCandidate is a journal entry proposed by the server-side matching
// engine for one bank transaction. Ephemeral: fetched per transaction and
// discarded once acted on.
type MatchCandidate struct {
	JournalEntryID string          `json:"journal_entry_id"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Confidence     decimal.Decimal `json:"confidence"` // 0..1
	MatchType      MatchType       `json:"match_type"`
	Reason         string          `json:"reason"`
}
