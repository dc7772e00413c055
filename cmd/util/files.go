package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListInputFiles returns the files in dir carrying one of the given
// extensions, in name order. A missing directory or an empty result both
// wrap ErrNoInputFiles so the caller exits with the right code.
func ListInputFiles(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: input directory %s does not exist", ErrNoInputFiles, dir)
		}
		return nil, fmt.Errorf("read input directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range exts {
			if ext == want {
				files = append(files, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoInputFiles, strings.Join(exts, "/"), dir)
	}
	return files, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
