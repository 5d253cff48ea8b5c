package tokenstore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hemolink/hemolink/internal/tokenstore"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.json")
	store := tokenstore.New(path)

	assert.NoError(t, store.Save(&tokenstore.Tokens{Access: "a-token", Refresh: "r-token"}))

	tokens, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "a-token", tokens.Access)
	assert.Equal(t, "r-token", tokens.Refresh)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := tokenstore.New(filepath.Join(t.TempDir(), "tokens.json"))

	tokens, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, tokens)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := tokenstore.New(path).Load()
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := tokenstore.New(path)

	assert.NoError(t, store.Save(&tokenstore.Tokens{Access: "a"}))
	assert.NoError(t, store.Clear())

	tokens, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, tokens)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}
