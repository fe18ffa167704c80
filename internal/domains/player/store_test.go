package player_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"airwave/infras/otel/mocks"
	"airwave/internal/domains/player"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (player.Store, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return player.NewStore(client, time.Hour, mocks.NewOtel()), server
}

func TestStore_LoadFresh(t *testing.T) {
	store, _ := newStore(t)

	p, err := store.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, player.New(), p)
}

func TestStore_UpdatePersists(t *testing.T) {
	store, server := newStore(t)
	ctx := context.Background()

	updated, err := store.Update(ctx, "u1", func(p *player.Player) error {
		return p.PlayStation("st-1")
	})
	require.NoError(t, err)
	assert.Equal(t, player.StateLoadingStation, updated.State)

	loaded, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)

	assert.Equal(t, time.Hour, server.TTL("player:session:u1"))

	other, err := store.Load(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, player.StateIdle, other.State)
}

func TestStore_UpdateErrorSavesNothing(t *testing.T) {
	store, server := newStore(t)

	_, err := store.Update(context.Background(), "u1", func(p *player.Player) error {
		return p.Pause()
	})

	require.ErrorIs(t, err, player.ErrInvalidTransition)
	assert.False(t, server.Exists("player:session:u1"))
}

func TestStore_UnreadableSessionStartsOver(t *testing.T) {
	store, server := newStore(t)
	require.NoError(t, server.Set("player:session:u1", "{not json"))

	p, err := store.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, player.StateIdle, p.State)
}

func TestStore_Reset(t *testing.T) {
	store, server := newStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "u1", func(p *player.Player) error { return p.PlayTrack("tr-1") })
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx, "u1"))
	assert.False(t, server.Exists("player:session:u1"))
}

func TestStore_UpdateAfterServerFailure(t *testing.T) {
	store, server := newStore(t)
	server.Close()

	_, err := store.Update(context.Background(), "u1", func(*player.Player) error { return nil })
	require.Error(t, err)
	assert.False(t, errors.Is(err, player.ErrInvalidTransition))
}
