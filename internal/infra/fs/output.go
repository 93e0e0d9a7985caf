package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyFile is returned when a written image has zero bytes.
var ErrEmptyFile = errors.New("file is empty after writing")

// OutputPath creates dir if needed and joins name onto it.
func OutputPath(dir, name string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// VerifyNonEmpty stats path and returns its size. A zero-byte file is removed.
func VerifyNonEmpty(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return 0, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return info.Size(), nil
}
