package listener_test

import (
	"context"
	"testing"

	"airwave/infras/otel/mocks"
	"airwave/internal/domains/listener"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (listener.Store, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return listener.NewStore(client, mocks.NewOtel()), server
}

func TestStore_SetGetAll(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	count, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.Set(ctx, map[string]int{"s1": 12, "s2": 40}))

	count, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s1": 12, "s2": 40}, all)
}

func TestStore_SetEmptyIsNoop(t *testing.T) {
	store, server := newStore(t)

	require.NoError(t, store.Set(context.Background(), nil))
	assert.False(t, server.Exists("listener:counts"))
}

func TestStore_Prune(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, map[string]int{"s1": 1, "s2": 2, "s3": 3}))
	require.NoError(t, store.Prune(ctx, map[string]int{"s2": 2}))

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s2": 2}, all)
}

func TestStore_AllSkipsGarbage(t *testing.T) {
	store, server := newStore(t)

	server.HSet("listener:counts", "s1", "7", "s2", "lots")

	all, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s1": 7}, all)
}
