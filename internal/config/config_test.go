package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default("https://books.example.com")
	cfg.Backend.CSRFToken = "tok-123"
	cfg.Defaults.BankAccountID = "acct-1"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://books.example.com", loaded.Backend.BaseURL)
	assert.Equal(t, "tok-123", loaded.Backend.CSRFToken)
	assert.Equal(t, 30, loaded.Backend.TimeoutSeconds)
	assert.Equal(t, "acct-1", loaded.Defaults.BankAccountID)
	assert.Equal(t, "ALL", loaded.Defaults.StatusFilter)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_MissingBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  timeout_seconds: 10\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
}
