package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name    string
		ending  string
		cleared string
		want    string
	}{
		{"fully cleared", "100.00", "100.00", "0.00"},
		{"nothing cleared", "100.00", "0.00", "100.00"},
		{"over cleared", "100.00", "150.50", "-50.50"},
		{"negative statement", "-25.00", "-25.00", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difference(dec(tt.ending), dec(tt.cleared))
			assert.True(t, got.Equal(dec(tt.want)), "got %s", got)
		})
	}
}

func TestReconciledPercent(t *testing.T) {
	assert.True(t, ReconciledPercent(0, 0).IsZero(), "zero total must not divide")
	assert.True(t, ReconciledPercent(5, 10).Equal(dec("50")))
	assert.True(t, ReconciledPercent(10, 10).Equal(dec("100")))
}

func TestWithinEpsilon(t *testing.T) {
	assert.True(t, WithinEpsilon(dec("0.00")))
	assert.True(t, WithinEpsilon(dec("0.01")))
	assert.True(t, WithinEpsilon(dec("-0.01")))
	assert.False(t, WithinEpsilon(dec("0.02")))
	assert.False(t, WithinEpsilon(dec("100.00")))
}

func TestSoftLocked(t *testing.T) {
	require.True(t, SoftLocked(dec("99.5")))
	require.True(t, SoftLocked(dec("100")))
	require.False(t, SoftLocked(dec("99.49")))
}
