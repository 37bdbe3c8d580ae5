// Package fsutil provides the file helpers shared by the ftab command-line
// tool: reads and writes that wrap I/O errors with the file's role and path,
// overwrite handling with an optional interactive confirmation hook, and
// manifest-relative path resolution.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfirmFunc is asked whether an existing file at path may be overwritten.
// A nil ConfirmFunc means never overwrite without the overwrite flag.
type ConfirmFunc func(path string) bool

// ReadFile reads the whole file at path. The role (e.g. "segment", "ticket")
// is included in the error for user-facing diagnostics.
func ReadFile(role, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at path %s: %w", role, path, err)
	}

	return data, nil
}

// Create creates the file at path for writing. When overwrite is false and
// the file exists, confirm (if non-nil) is asked once; a negative answer
// returns the original exists error.
func Create(role, path string, overwrite bool, confirm ConfirmFunc) (*os.File, error) {
	if overwrite {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s at path %s: %w", role, path, err)
		}

		return f, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err == nil {
		return f, nil
	}

	if errors.Is(err, os.ErrExist) && confirm != nil && isFile(path) && confirm(path) {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s at path %s: %w", role, path, err)
		}

		return f, nil
	}

	return nil, fmt.Errorf("failed to create %s at path %s: %w", role, path, err)
}

// WriteFile creates the file at path (respecting overwrite/confirm semantics
// of Create) and writes data to it.
func WriteFile(role, path string, data []byte, overwrite bool, confirm ConfirmFunc) error {
	f, err := Create(role, path, overwrite, confirm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()

		return fmt.Errorf("failed to write %s at path %s: %w", role, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s at path %s: %w", role, path, err)
	}

	return nil
}

// Qualify resolves path against dir: a relative path is joined to dir, an
// absolute path (or an empty dir) is returned unchanged.
func Qualify(path, dir string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
