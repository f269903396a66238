package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/d60-Lab/orkud/internal/store"
)

// FileSink stores the snapshot as a JSON document on local disk.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink { return &FileSink{path: filepath.Clean(path)} }

// Path returns the snapshot file location.
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Load(ctx context.Context) (*store.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return store.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	return store.DecodeSnapshot(b)
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write leaves the previous snapshot intact.
func (s *FileSink) Save(ctx context.Context, d *store.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := store.EncodeSnapshot(d)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
