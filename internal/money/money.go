// Package money renders decimal amounts with currency-aware formatting for
// CLI output. Amounts stay decimal everywhere else; this is display only.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders an amount in the given ISO currency, e.g. "$1,234.50".
// Unknown currency codes fall back to a plain 2-decimal string.
func Format(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), currency).Display()
}

// FormatSigned renders like Format but with an explicit "+" on positive
// amounts, for difference and running-total columns.
func FormatSigned(amount decimal.Decimal, currency string) string {
	s := Format(amount, currency)
	if amount.IsPositive() {
		return "+" + s
	}
	return s
}
