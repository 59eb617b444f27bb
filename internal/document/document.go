// Package document loads the file that minigrep searches.
package document

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Load reads the whole file at path and returns it as text.
// The file must be a regular file containing valid UTF-8.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", classify(path, err)
	}
	if info.IsDir() {
		return "", errors.New(errors.ErrCodeNotRegularFile, fmt.Sprintf("%s is a directory", path), nil).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}

	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeInvalidText, fmt.Sprintf("%s does not contain valid UTF-8", path), nil).
			WithDetail("path", path)
	}

	return string(data), nil
}

func classify(path string, err error) error {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.IOError(errors.ErrCodeFileNotFound, path, err)
	case stderrors.Is(err, fs.ErrPermission):
		return errors.IOError(errors.ErrCodeFilePermission, path, err)
	default:
		return errors.IOError(errors.ErrCodeFileRead, path, err)
	}
}
