package feed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconcile-dev/reconcile/internal/model"
)

func tx(id string, status model.TransactionStatus, desc, cparty string) model.BankTransaction {
	return model.BankTransaction{
		ID:                id,
		Description:       desc,
		Counterparty:      cparty,
		Amount:            decimal.New(-100, 0),
		Status:            status,
		IncludedInSession: true,
	}
}

func sample() []model.BankTransaction {
	return []model.BankTransaction{
		tx("t1", model.TxNew, "Unmatched wire transfer", "Acme Corp"),
		tx("t2", model.TxMatched, "GitHub subscription", "GitHub"),
		tx("t3", model.TxExcluded, "Duplicate import", ""),
		tx("t4", model.TxNew, "Office supplies", "unmatched vendor llc"),
	}
}

func TestFilter_StatusSubsetOfAll(t *testing.T) {
	all := Filter(sample(), StatusAll, "")
	excluded := Filter(sample(), string(model.TxExcluded), "")

	require.Len(t, all, 4)
	require.Len(t, excluded, 1)
	for _, e := range excluded {
		assert.Contains(t, ids(all), e.ID, "status-filtered result must be a subset of ALL")
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	got := Filter(sample(), StatusAll, "UNMATCHED")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"t1", "t4"}, ids(got))
}

func TestFilter_SearchAndStatusCombineWithAnd(t *testing.T) {
	got := Filter(sample(), string(model.TxNew), "acme")
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, StatusAll, ""))
}

func TestBucketOf(t *testing.T) {
	assert.Equal(t, BucketForReview, BucketOf(tx("a", model.TxNew, "", "")))
	assert.Equal(t, BucketForReview, BucketOf(tx("b", model.TxSuggested, "", "")))
	assert.Equal(t, BucketMatched, BucketOf(tx("c", model.TxMatched, "", "")))
	assert.Equal(t, BucketMatched, BucketOf(tx("d", model.TxReconciled, "", "")))
	assert.Equal(t, BucketExcluded, BucketOf(tx("e", model.TxExcluded, "", "")))

	toggledOut := tx("f", model.TxNew, "", "")
	toggledOut.IncludedInSession = false
	assert.Equal(t, BucketExcluded, BucketOf(toggledOut), "toggling out of the session moves the row to excluded")
}

func ids(txs []model.BankTransaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}
