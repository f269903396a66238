package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/pkg/logger"
)

var tracer = otel.Tracer("github.com/d60-Lab/orkud/internal/store")

// ErrPersistence matches every PersistenceError.
var ErrPersistence = errors.New("persistence failed")

// PersistenceError reports a failed snapshot write. The in-memory mutation
// that preceded it stays applied.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("save snapshot: %v", e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// Sink durably stores whole snapshots.
type Sink interface {
	// Load returns the last saved dataset, or an empty one if nothing was saved yet.
	Load(ctx context.Context) (*Dataset, error)
	// Save overwrites the stored snapshot with d.
	Save(ctx context.Context, d *Dataset) error
}

// Default seed user written on first start.
const (
	DefaultUsername = "demo_user"
	DefaultEmail    = "demo@example.com"
	DefaultBio      = "Welcome to Orkud!"
)

// Store is the process-wide entity store. Reads share a read lock; every
// mutation runs its check, write and snapshot save under one write lock.
type Store struct {
	mu    sync.RWMutex
	data  *Dataset
	sink  Sink
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides entity id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Open loads the dataset from sink. A missing, unreadable or corrupt snapshot
// yields an empty dataset with a warning. When no users exist the default
// user is seeded and saved right away; a failed save is returned as a
// PersistenceError alongside the usable store.
func Open(ctx context.Context, sink Sink, opts ...Option) (*Store, error) {
	s := &Store{
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	d, err := sink.Load(ctx)
	switch {
	case err != nil:
		logger.Warn("load snapshot failed, starting with empty dataset", zap.Error(err))
		d = NewDataset()
	case d == nil:
		d = NewDataset()
	default:
		d.fill()
	}
	s.data = d

	if d.Users.Len() > 0 {
		logger.Info("snapshot loaded",
			zap.Int("users", d.Users.Len()),
			zap.Int("posts", d.Posts.Len()),
			zap.Int("comments", d.Comments.Len()),
			zap.Int("likes", d.Likes.Len()),
			zap.Int("follows", d.Follows.Len()),
			zap.Int("tickets", d.SupportTickets.Len()),
		)
		return s, nil
	}

	err = s.Mutate(ctx, func(d *Dataset) error {
		d.Users.Insert(&model.User{
			ID:        s.NewID(),
			Username:  DefaultUsername,
			Email:     DefaultEmail,
			Bio:       DefaultBio,
			CreatedAt: s.Now(),
		})
		return nil
	})
	if err != nil {
		return s, err
	}
	logger.Info("seeded default user", zap.String("username", DefaultUsername))
	return s, nil
}

// Now returns the store clock's current time at millisecond precision, the
// finest resolution every sink column keeps.
func (s *Store) Now() time.Time { return s.now().Truncate(time.Millisecond) }

// NewID returns a fresh entity id.
func (s *Store) NewID() string { return s.newID() }

// View runs fn with shared access to the dataset. fn must not modify it or
// retain references past its return.
func (s *Store) View(fn func(d *Dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// Mutate runs fn with exclusive access and, if fn succeeds, saves the whole
// dataset through the sink before releasing the lock. fn must return its
// error before touching the dataset; there is no rollback.
func (s *Store) Mutate(ctx context.Context, fn func(d *Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.data); err != nil {
		return err
	}
	ctx, span := tracer.Start(ctx, "store.save")
	defer span.End()
	if err := s.sink.Save(ctx, s.data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save snapshot")
		logger.Error("save snapshot failed, in-memory state kept", zap.Error(err))
		return &PersistenceError{Err: err}
	}
	return nil
}

// Snapshot returns a deep copy of the current dataset.
func (s *Store) Snapshot() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}
