package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/orkud/internal/store"
)

// RedisSink stores the snapshot as a single string value.
type RedisSink struct {
	client redis.Cmdable
	key    string
}

func NewRedisSink(client redis.Cmdable, key string) *RedisSink {
	return &RedisSink{client: client, key: key}
}

func (s *RedisSink) Load(ctx context.Context) (*store.Dataset, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return store.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return store.DecodeSnapshot(b)
}

func (s *RedisSink) Save(ctx context.Context, d *store.Dataset) error {
	b, err := store.EncodeSnapshot(d)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
