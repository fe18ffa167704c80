package listener

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"airwave/infras/otel"
	"airwave/shared/constant"

	"github.com/redis/go-redis/v9"
)

const countsKey = "listener:counts"

// Store keeps the current listener count of every station.
type Store interface {
	// Get returns the count of stationID, or 0 when none was simulated yet.
	Get(ctx context.Context, stationID string) (int, error)
	All(ctx context.Context) (map[string]int, error)
	Set(ctx context.Context, counts map[string]int) error
	// Prune drops the counts of stations not in keep.
	Prune(ctx context.Context, keep map[string]int) error
}

type redisStore struct {
	client *redis.Client
	otel   otel.Otel
}

func NewStore(client *redis.Client, otel otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   otel,
	}
}

func (s *redisStore) Get(ctx context.Context, stationID string) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listener.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.client.HGet(ctx, countsKey, stationID).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read listener count: %w", err)
	}

	return res, nil
}

func (s *redisStore) All(ctx context.Context) (res map[string]int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listener.All")
	defer scope.End()
	defer scope.TraceIfError(&err)

	raw, err := s.client.HGetAll(ctx, countsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read listener counts: %w", err)
	}

	res = make(map[string]int, len(raw))

	for id, value := range raw {
		count, err := strconv.Atoi(value)
		if err != nil {
			continue
		}

		res[id] = count
	}

	return res, nil
}

func (s *redisStore) Set(ctx context.Context, counts map[string]int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listener.Set")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(counts) == 0 {
		return nil
	}

	values := make(map[string]any, len(counts))
	for id, count := range counts {
		values[id] = count
	}

	if err = s.client.HSet(ctx, countsKey, values).Err(); err != nil {
		return fmt.Errorf("failed to store listener counts: %w", err)
	}

	return nil
}

func (s *redisStore) Prune(ctx context.Context, keep map[string]int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listener.Prune")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ids, err := s.client.HKeys(ctx, countsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list listener counts: %w", err)
	}

	stale := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	if err = s.client.HDel(ctx, countsKey, stale...).Err(); err != nil {
		return fmt.Errorf("failed to prune listener counts: %w", err)
	}

	return nil
}
