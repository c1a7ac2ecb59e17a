package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("First National")
	assert.Equal(t, "First National", cfg.Bank.Name)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "0.02", cfg.Rates.SavingsMonthlyInterest)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("First National")
	cfg.Bank.Branch = "Melbourne"
	cfg.Git.AutoCommit = true
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	contents := "bank:\n  name: Side Street Credit\nstorage:\n  data_dir: records\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Side Street Credit", cfg.Bank.Name)
	assert.Equal(t, "records", cfg.Storage.DataDir)
	assert.Empty(t, cfg.Rates.SavingsMonthlyInterest)
}
