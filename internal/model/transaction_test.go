package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransactionStatus(t *testing.T) {
	tests := []struct {
		raw        string
		wantStatus TransactionStatus
		wantKind   MatchKind
	}{
		{"NEW", TxNew, MatchNone},
		{"SUGGESTED", TxSuggested, MatchNone},
		{"MATCHED", TxMatched, MatchNone},
		{"MATCHED_SINGLE", TxMatched, MatchSingle},
		{"MATCHED_MULTI", TxMatched, MatchMulti},
		{"PARTIAL", TxPartial, MatchNone},
		{"RECONCILED", TxReconciled, MatchNone},
		{"EXCLUDED", TxExcluded, MatchNone},
		{"SOMETHING_ELSE", TransactionStatus("SOMETHING_ELSE"), MatchNone},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, kind := ParseTransactionStatus(tt.raw)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestCountsAsMatched(t *testing.T) {
	assert.True(t, CountsAsMatched(TxMatched))
	assert.True(t, CountsAsMatched(TxReconciled))
	assert.False(t, CountsAsMatched(TxNew))
	assert.False(t, CountsAsMatched(TxSuggested))
	assert.False(t, CountsAsMatched(TxPartial))
	assert.False(t, CountsAsMatched(TxExcluded))
}
