package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconcile-dev/reconcile/internal/config"
	"github.com/reconcile-dev/reconcile/internal/model"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "https://books.example.com", "acct-1"))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "https://books.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "acct-1", cfg.Defaults.BankAccountID)
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  base_url: https://old\n"), 0o644))

	err := runInit(dir, "https://new", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestParseSplitLine(t *testing.T) {
	account, amount, desc, err := parseSplitLine("acct-rent:-60.00:rent share")
	require.NoError(t, err)
	assert.Equal(t, "acct-rent", account)
	assert.Equal(t, "-60", amount.String())
	assert.Equal(t, "rent share", desc)

	_, _, _, err = parseSplitLine("no-amount")
	require.Error(t, err)

	_, _, _, err = parseSplitLine("acct:notanumber")
	require.Error(t, err)
}

func TestParseAdjustmentType(t *testing.T) {
	for raw, want := range map[string]model.AdjustmentType{
		"fee":             model.AdjustmentBankFee,
		"BANK_FEE":        model.AdjustmentBankFee,
		"interest":        model.AdjustmentInterestIncome,
		"interest_income": model.AdjustmentInterestIncome,
		"other":           model.AdjustmentOther,
	} {
		got, err := parseAdjustmentType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := parseAdjustmentType("refund")
	require.Error(t, err)
}
