package docscheck

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gorewood/nextkit/internal/output"
)

// readOptional reads a file that may legitimately be absent.
// Absence is reported through found; any other failure is a system error.
func readOptional(path, display string) (content string, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, output.NewSystemErrorWithCause("reading "+display, err)
	}
	return string(data), true, nil
}

// exists reports whether path names an existing filesystem entry.
// Permission errors are surfaced; every other stat failure counts as absent.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return false, output.NewSystemErrorWithCause("checking "+path, err)
	}
	return false, nil
}

// isDir reports whether path is an existing directory.
func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, output.NewSystemErrorWithCause("checking "+path, err)
	}
	return info.IsDir(), nil
}
