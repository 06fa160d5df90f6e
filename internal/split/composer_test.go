package split

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconcile-dev/reconcile/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTx(amount string) model.BankTransaction {
	return model.BankTransaction{ID: "tx-1", Amount: dec(amount), Status: model.TxNew}
}

func TestComposer_BalancedSplit(t *testing.T) {
	c := NewComposer(newTx("-100.00"))
	c.AddLine("acct-rent", dec("-60.00"), "rent share")
	c.AddLine("acct-utilities", dec("-40.00"), "utilities share")

	require.Empty(t, c.Validate())
	assert.True(t, c.Balanced())
	assert.True(t, c.Remaining().IsZero())
}

func TestComposer_UnbalancedSplit(t *testing.T) {
	c := NewComposer(newTx("-100.00"))
	c.AddLine("acct-rent", dec("-60.00"), "")

	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "lines sum to 60.00")
	assert.False(t, c.Balanced())
	assert.True(t, c.Remaining().Equal(dec("40.00")))
}

func TestComposer_WithinEpsilonCountsAsBalanced(t *testing.T) {
	c := NewComposer(newTx("100.00"))
	c.AddLine("a", dec("99.99"), "")
	assert.True(t, c.Balanced(), "0.01 off is within tolerance")
}

func TestComposer_MissingAccountAndAmount(t *testing.T) {
	c := NewComposer(newTx("50.00"))
	id := c.AddLine("", decimal.Zero, "")

	errs := c.Validate()
	require.Len(t, errs, 3, "missing account, missing amount, unbalanced")
	assert.Equal(t, id, errs[0].LocalID)
}

func TestComposer_EmptyWorkingSet(t *testing.T) {
	c := NewComposer(newTx("50.00"))
	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one line")
}

func TestComposer_UpdateAndRemove(t *testing.T) {
	c := NewComposer(newTx("-80.00"))
	a := c.AddLine("acct-1", dec("-50.00"), "")
	b := c.AddLine("acct-2", dec("-20.00"), "")

	require.NoError(t, c.UpdateLine(b, "acct-2", dec("-30.00"), "adjusted"))
	assert.True(t, c.Balanced())

	require.NoError(t, c.RemoveLine(a))
	require.Len(t, c.Lines(), 1)
	assert.False(t, c.Balanced())

	assert.Error(t, c.UpdateLine("nope", "x", decimal.Zero, ""))
	assert.Error(t, c.RemoveLine("nope"))
}

func TestComposer_SignInsensitiveAllocation(t *testing.T) {
	// Lines may be entered positive against a negative transaction.
	c := NewComposer(newTx("-100.00"))
	c.AddLine("acct-1", dec("100.00"), "")
	assert.True(t, c.Balanced())
}
