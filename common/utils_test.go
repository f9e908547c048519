package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExist(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExist(dir))
	assert.False(t, FileExist(filepath.Join(dir, "missing")))
}

func TestAbsolutePath(t *testing.T) {
	assert.Equal(t, "/abs/file", AbsolutePath("/data", "/abs/file"))
	assert.Equal(t, filepath.Join("/data", "rel"), AbsolutePath("/data", "rel"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "wallets"), AbsolutePath("/data", "~/wallets"))
}

func TestStorageSize(t *testing.T) {
	assert.Equal(t, "512.00 B", StorageSize(512).String())
	assert.Equal(t, "16.00 MiB", StorageSize(16*1048576+1).String())
	assert.Equal(t, "2.00 KiB", StorageSize(2048).String())
}
