// Package balance centralizes the balancing arithmetic and the epsilon used
// everywhere a difference is compared to zero, so the completion gate and
// split validity checks agree.
package balance

import "github.com/shopspring/decimal"

// Epsilon is the tolerance for "balanced": 0.01 currency units.
var Epsilon = decimal.NewFromFloat(0.01)

// SoftLockPercent is the reconciled-percent threshold for the UI-only
// soft-lock hint. Distinct from the authoritative COMPLETED lock.
var SoftLockPercent = decimal.NewFromFloat(99.5)

// Difference returns endingBalance - clearedBalance.
func Difference(ending, cleared decimal.Decimal) decimal.Decimal {
	return ending.Sub(cleared)
}

// ReconciledPercent returns reconciled/total * 100, or zero when total is 0.
func ReconciledPercent(reconciled, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(reconciled)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100))
}

// WithinEpsilon reports whether d is zero within Epsilon.
func WithinEpsilon(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Epsilon)
}

// SoftLocked reports whether a session's reconciled percent has crossed the
// soft-lock display threshold.
func SoftLocked(reconciledPercent decimal.Decimal) bool {
	return reconciledPercent.GreaterThanOrEqual(SoftLockPercent)
}
