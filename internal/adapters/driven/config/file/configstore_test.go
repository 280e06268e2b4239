package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	t.Run("creates directory and starts empty", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")

		store, err := NewConfigStore(dir)

		require.NoError(t, err)
		assert.Empty(t, store.APIKey())
		assert.Empty(t, store.DefaultSite())
		assert.DirExists(t, dir)
	})

	t.Run("loads existing file", func(t *testing.T) {
		dir := t.TempDir()
		content := "api_key = \"stored-key\"\ndefault_site = \"sc-domain:example.com\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

		store, err := NewConfigStore(dir)

		require.NoError(t, err)
		assert.Equal(t, "stored-key", store.APIKey())
		assert.Equal(t, "sc-domain:example.com", store.DefaultSite())
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [toml"), 0600))

		_, err := NewConfigStore(dir)

		require.Error(t, err)
	})
}

func TestConfigStore_SetAPIKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetAPIKey("new-key"))

	// Value round-trips through the file.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "new-key", reloaded.APIKey())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SetDefaultSite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetDefaultSite("https://www.example.com/"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/", reloaded.DefaultSite())
}
