package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "a", "b", "c")

	require.NoError(t, EnsureDir(target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingIsNoop(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, EnsureDir(tempDir))
}

func TestEnsureFileDir(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "nested", "dir", "file.repo")

	require.NoError(t, EnsureFileDir(file))

	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateFilePerm(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.conf")

	f, err := CreateFilePerm(path, FileModeDefault)
	require.NoError(t, err)
	_, err = f.WriteString("enabled=1\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(FileModeDefault), info.Mode().Perm())
	}

	// Creating again truncates the existing file.
	f, err = CreateFilePerm(path, FileModeDefault)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}
