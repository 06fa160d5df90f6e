package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,234.50", Format(decimal.RequireFromString("1234.50"), "USD"))
	assert.Equal(t, "-$0.99", Format(decimal.RequireFromString("-0.99"), "USD"))
}

func TestFormatUnknownCurrency(t *testing.T) {
	assert.Equal(t, "12.30", Format(decimal.RequireFromString("12.3"), "???"))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$5.00", FormatSigned(decimal.RequireFromString("5"), "USD"))
	assert.Equal(t, "-$5.00", FormatSigned(decimal.RequireFromString("-5"), "USD"))
	assert.Equal(t, "$0.00", FormatSigned(decimal.Zero, "USD"))
}
