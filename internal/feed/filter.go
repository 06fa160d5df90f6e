// Package feed provides pure filtering over the session's transaction
// snapshot. It takes only its inputs and allocates a new slice, so repeated
// calls can never observe stale state.
package feed

import (
	"strings"

	"github.com/reconcile-dev/reconcile/internal/model"
)

// StatusAll selects every status.
const StatusAll = "ALL"

// Filter returns the transactions matching both the status filter and the
// free-text search. Status matches exactly (or StatusAll); search is a
// case-insensitive substring test over description, counterparty and
// category. The two conditions combine with AND.
func Filter(txs []model.BankTransaction, statusFilter string, search string) []model.BankTransaction {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.BankTransaction, 0, len(txs))
	for _, tx := range txs {
		if statusFilter != StatusAll && string(tx.Status) != statusFilter {
			continue
		}
		if needle != "" && !matchesSearch(tx, needle) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesSearch(tx model.BankTransaction, needle string) bool {
	for _, field := range []string{tx.Description, tx.Counterparty, tx.Category} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Bucket names the review bucket a transaction renders under.
type Bucket string

const (
	BucketForReview Bucket = "for-review"
	BucketMatched   Bucket = "matched"
	BucketExcluded  Bucket = "excluded"
)

// BucketOf places a transaction: excluded rows (or rows toggled out of the
// session) fall in the excluded bucket, matched/reconciled rows in matched,
// everything else is still for review.
func BucketOf(tx model.BankTransaction) Bucket {
	if tx.Status == model.TxExcluded || tx.Status == model.TxIgnored || !tx.IncludedInSession {
		return BucketExcluded
	}
	if model.CountsAsMatched(tx.Status) {
		return BucketMatched
	}
	return BucketForReview
}
