package cache_test

import (
	"context"
	"testing"

	"airwave/infras/otel/mocks"
	"airwave/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "station:get:s1", sample{ID: "s1", Count: 42}, 60))

	var got sample
	require.NoError(t, c.Get(ctx, "station:get:s1", &got))
	assert.Equal(t, sample{ID: "s1", Count: 42}, got)

	require.NoError(t, c.Save(ctx, "plain", "value", 60))

	var plain string
	require.NoError(t, c.Get(ctx, "plain", &plain))
	assert.Equal(t, "value", plain)

	server.FastForward(61e9)
	err := c.Get(ctx, "plain", &plain)
	assert.True(t, cache.IsMiss(err))
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	var got sample
	err := c.Get(context.Background(), "missing", &got)

	assert.Error(t, err)
	assert.True(t, cache.IsMiss(err))
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:gets:a", "1", 60))
	require.NoError(t, c.Save(ctx, "booking:gets:b", "2", 60))
	require.NoError(t, c.Save(ctx, "booking:get:x", "3", 60))

	require.NoError(t, c.Clear(ctx, "booking:gets*"))
	assert.False(t, server.Exists("booking:gets:a"))
	assert.False(t, server.Exists("booking:gets:b"))
	assert.True(t, server.Exists("booking:get:x"))

	require.NoError(t, c.Delete(ctx, "booking:get:x"))
	assert.False(t, server.Exists("booking:get:x"))
}

func TestRedisCache_Incr(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	first, err := c.Incr(ctx, "ratelimit:1.2.3.4", 60)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	second, err := c.Incr(ctx, "ratelimit:1.2.3.4", 60)
	require.NoError(t, err)
	assert.EqualValues(t, 2, second)

	assert.Greater(t, server.TTL("ratelimit:1.2.3.4").Seconds(), float64(0))
}
