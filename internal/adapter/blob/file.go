package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores the snapshot as a single JSON file. Commits write a
// sibling temp file and rename it over the target, so a crash leaves
// either the old or the new snapshot in place.
type File struct {
	path string
}

// NewFile creates a file blob at path, creating parent directories if
// needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("blob: create dir for %s: %w", path, err)
	}
	return &File{path: path}, nil
}

func (f *File) Load(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("blob: read %s: %w", f.path, err)
	}
	return data, true, nil
}

func (f *File) Store(_ context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("blob: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("blob: commit %s: %w", f.path, err)
	}
	return nil
}

var _ Blob = (*File)(nil)
