package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileMode is applied to new files. An existing file keeps its own mode.
const FileMode os.FileMode = 0644

// WriteAtomic writes a file through a temp file in the same directory and
// renames it over path once fill succeeds. On any failure the temp file is
// removed and path is left untouched.
func WriteAtomic(path string, fill func(w io.Writer) error) (err error) {
	if path == "" {
		return fmt.Errorf("cannot write: missing path")
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = fill(tmp); err != nil {
		return err
	}
	mode := FileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set mode on temp file for %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file for %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}

	// Atomic replace
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp → %s: %w", path, err)
	}
	return nil
}
