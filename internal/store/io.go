package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"passvault/internal/domain"
)

// fsError tags err with the matching domain error kind.
func fsError(op, path string, err error) error {
	kind := domain.ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		kind = domain.ErrPath
	case errors.Is(err, fs.ErrPermission):
		kind = domain.ErrPermission
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, kind, err)
}

// checkPath rejects an empty path before it reaches the OS.
func checkPath(op, path string) error {
	if path == "" {
		return fmt.Errorf("%s: %w: empty path", op, domain.ErrPath)
	}
	return nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o700)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
