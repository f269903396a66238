package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/orkud/internal/store"
)

func TestFileSink(t *testing.T) {
	assertSinkContract(t, NewFileSink(filepath.Join(t.TempDir(), "nested", "data.json")))
}

func TestFileSink_WritesReadableJSONAndNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	s := NewFileSink(path)
	assert.Equal(t, path, s.Path())

	require.NoError(t, s.Save(context.Background(), fixtureDataset()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	d, err := store.DecodeSnapshot(b)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Users.Len())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestFileSink_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": [`), 0o644))

	_, err := NewFileSink(path).Load(context.Background())
	assert.ErrorIs(t, err, store.ErrCorruptSnapshot)
}

func TestFileSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewFileSink(filepath.Join(t.TempDir(), "data.json"))
	assert.ErrorIs(t, s.Save(ctx, store.NewDataset()), context.Canceled)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
