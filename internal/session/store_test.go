package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	assert.False(t, s.HasCredential())
	assert.False(t, s.HasSelectedTarget())

	require.NoError(t, s.SetCredential("ghp_secret", "octocat"))
	require.NoError(t, s.SelectTarget("octo/hello"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.True(t, reopened.HasCredential())
	assert.Equal(t, "ghp_secret", reopened.Credential())
	assert.Equal(t, "octocat", reopened.Login())
	assert.Equal(t, "octo/hello", reopened.SelectedTarget())
}

func TestStore_ClearCredentialKeepsTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetCredential("token", "octocat"))
	require.NoError(t, s.SelectTarget("octo/hello"))

	require.NoError(t, s.ClearCredential())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.HasCredential())
	assert.Empty(t, reopened.Login())
	assert.True(t, reopened.HasSelectedTarget())
}

func TestStore_RejectsEmptyValues(t *testing.T) {
	s := NewMemory()
	assert.Error(t, s.SetCredential("", "octocat"))
	assert.Error(t, s.SelectTarget(""))
	assert.False(t, s.HasCredential())
}

func TestStore_MemoryNeverWrites(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.SetCredential("token", "octocat"))
	assert.Empty(t, s.Path())
	assert.True(t, s.HasCredential())
}

func TestOpen_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unterminated"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestStore_FailedWriteKeepsState(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// The parent "directory" is a regular file, so every write fails.
	s := &Store{path: filepath.Join(blocker, "session.yaml")}
	assert.Error(t, s.SetCredential("token", "octocat"))
	assert.False(t, s.HasCredential())
}
