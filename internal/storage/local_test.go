package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocalStorage(dir)
	assert.NoError(t, err)

	url, err := store.Save(context.Background(), "avatar_123.png", "image/png", strings.NewReader("pngdata"))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/avatar_123.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "avatar_123.png"))
	assert.NoError(t, err)
	assert.Equal(t, "pngdata", string(data))
}

func TestNewLocalStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
