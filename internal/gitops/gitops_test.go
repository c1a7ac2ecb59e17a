package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func TestInit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))

	// Init on an existing repo is a no-op.
	require.NoError(t, Init(dir))
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	path := filepath.Join(dir, "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,address,contact_details,accounts\n"), 0o644))

	hash, err := CommitAll(dir, "customer: register Alice", "Passbook", "books@passbook.dev")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestIsRepo_NotARepo(t *testing.T) {
	assert.False(t, IsRepo(t.TempDir()))
}
