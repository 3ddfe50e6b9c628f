package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewStore(path)

	require.NoError(t, store.Save("abc123"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestStoreLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok\n"), 0600))

	token, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestStoreClear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Clear(), "clearing an empty store")
	require.NoError(t, store.Save("x"))
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("stored"), 0600))
	store := NewStore(path)

	sess, err := Acquire(store)
	require.NoError(t, err)
	assert.Equal(t, "stored", sess.Token())
	assert.True(t, sess.Authenticated())

	require.NoError(t, sess.Set("fresh"))
	assert.Equal(t, "fresh", sess.Token())

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh", reloaded)

	require.NoError(t, sess.Clear())
	assert.Empty(t, sess.Token())
	assert.False(t, sess.Authenticated())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAcquireUnreadable(t *testing.T) {
	// A directory in place of the token file cannot be read as a file.
	dir := t.TempDir()

	_, err := Acquire(NewStore(dir))
	require.Error(t, err)
}
