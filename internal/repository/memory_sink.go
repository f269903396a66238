package repository

import (
	"context"
	"sync"

	"github.com/d60-Lab/orkud/internal/store"
)

// MemorySink keeps the last snapshot in process. It is the test double for
// the durable sinks and can be told to fail saves.
type MemorySink struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	saveErr error
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Load(ctx context.Context) (*store.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return store.NewDataset(), nil
	}
	return store.DecodeSnapshot(s.data)
}

func (s *MemorySink) Save(ctx context.Context, d *store.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	b, err := store.EncodeSnapshot(d)
	if err != nil {
		return err
	}
	s.data = b
	s.saves++
	return nil
}

// FailSaves makes every following Save return err; nil restores normal behaviour.
func (s *MemorySink) FailSaves(err error) {
	s.mu.Lock()
	s.saveErr = err
	s.mu.Unlock()
}

// SetRaw replaces the stored snapshot bytes, e.g. with a corrupt document.
func (s *MemorySink) SetRaw(b []byte) {
	s.mu.Lock()
	s.data = b
	s.mu.Unlock()
}

// Saves reports how many saves succeeded.
func (s *MemorySink) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
