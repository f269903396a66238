package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/orkud/internal/store"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisSink(t *testing.T) {
	_, client := newTestRedis(t)
	assertSinkContract(t, NewRedisSink(client, "orkud:test"))
}

func TestRedisSink_StoresUnderKey(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisSink(client, "orkud:snapshot")
	require.NoError(t, s.Save(context.Background(), fixtureDataset()))

	raw, err := mr.Get("orkud:snapshot")
	require.NoError(t, err)
	d, err := store.DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Posts.Len())
	assert.Zero(t, mr.TTL("orkud:snapshot"))
}

func TestRedisSink_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set("k", "nope"))
	_, err := NewRedisSink(client, "k").Load(context.Background())
	assert.ErrorIs(t, err, store.ErrCorruptSnapshot)
}

func TestRedisSink_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	_, err := NewRedisSink(client, "k").Load(context.Background())
	assert.Error(t, err)
}
