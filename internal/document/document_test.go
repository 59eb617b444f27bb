package document

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

func TestLoad_ReadsWholeFile(t *testing.T) {
	// Given: a text file
	path := filepath.Join(t.TempDir(), "poem.txt")
	content := "Rust\nsafe, fast, productive.\nPick three.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When: loading it
	got, err := Load(path)

	// Then: the full contents come back unchanged
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
	assert.Equal(t, errors.CategoryIO, errors.GetCategory(err))
	assert.Contains(t, errors.Message(err), "missing.txt")
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotRegularFile, errors.GetCode(err))
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.dat")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', '\n', 0xff, 0xfe}, 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidText, errors.GetCode(err))
}

func TestLoad_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("hidden"), 0o000))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFilePermission, errors.GetCode(err))
}
