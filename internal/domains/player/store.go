package player

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"airwave/infras/otel"
	"airwave/shared"
	"airwave/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	sessionKeyPrefix = "player:session"
	maxUpdateRetries = 5
)

var ErrSessionBusy = errors.New("player session is being updated concurrently")

// Store persists one player session per user.
type Store interface {
	// Load returns the stored session of userID, or a fresh player.
	Load(ctx context.Context, userID string) (Player, error)
	// Update applies fn to the stored session atomically and saves the result.
	// Nothing is saved when fn returns an error.
	Update(ctx context.Context, userID string, fn func(*Player) error) (Player, error)
	Reset(ctx context.Context, userID string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	otel   otel.Otel
}

func NewStore(client *redis.Client, ttl time.Duration, otel otel.Otel) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
		otel:   otel,
	}
}

func sessionKey(userID string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, userID)
}

func (s *redisStore) Load(ctx context.Context, userID string) (res Player, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".player.Load")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return read(ctx, s.client, sessionKey(userID))
}

func (s *redisStore) Update(ctx context.Context, userID string, fn func(*Player) error) (res Player, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".player.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := sessionKey(userID)

	txf := func(tx *redis.Tx) error {
		current, err := read(ctx, tx, key)
		if err != nil {
			return err
		}

		if err = fn(&current); err != nil {
			return err
		}

		raw, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to encode player session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)

			return nil
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		res = current

		return nil
	}

	for range maxUpdateRetries {
		err = s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			log.Debug().Str("user", userID).Msg("player session changed concurrently, retrying")

			continue
		}

		return res, err
	}

	return res, ErrSessionBusy
}

func (s *redisStore) Reset(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".player.Reset")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to reset player session: %w", err)
	}

	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func read(ctx context.Context, client getter, key string) (Player, error) {
	raw, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}

	if err != nil {
		return Player{}, fmt.Errorf("failed to read player session: %w", err)
	}

	var p Player
	if err = json.Unmarshal(raw, &p); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable player session")

		return New(), nil
	}

	return p, nil
}
