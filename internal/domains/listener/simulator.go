package listener

import (
	"context"
	"math/rand/v2"
	"time"

	"airwave/config"
	"airwave/shared/metrics"

	"github.com/rs/zerolog/log"
)

// Stations lists the stations whose audience is simulated.
type Stations interface {
	Names(ctx context.Context) (map[string]string, error)
}

// Simulator periodically perturbs the listener count of every station.
type Simulator struct {
	store    Store
	stations Stations
	metrics  *metrics.Metrics
	bounds   Bounds
	interval time.Duration
	rnd      *rand.Rand
}

func NewSimulator(store Store, stations Stations, cfg *config.Config, m *metrics.Metrics) *Simulator {
	interval := time.Duration(cfg.Listener.TickSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	seed := uint64(time.Now().UnixNano())

	return &Simulator{
		store:    store,
		stations: stations,
		metrics:  m,
		bounds:   BoundsFromConfig(cfg),
		interval: interval,
		rnd:      rand.New(rand.NewPCG(seed, seed>>1)), //nolint:gosec
	}
}

// WithRand replaces the random source, for deterministic runs.
func (s *Simulator) WithRand(rnd *rand.Rand) *Simulator {
	s.rnd = rnd

	return s
}

// Run ticks until ctx is done.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Msg("listener simulator started")

	s.tickAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener simulator stopped")

			return
		case <-ticker.C:
			s.tickAndLog(ctx)
		}
	}
}

func (s *Simulator) tickAndLog(ctx context.Context) {
	if _, err := s.Tick(ctx); err != nil {
		log.Error().Err(err).Msg("listener simulator tick failed")
	}
}

// Tick perturbs every station once and returns the new counts.
func (s *Simulator) Tick(ctx context.Context) (map[string]int, error) {
	names, err := s.stations.Names(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	current, err := s.store.All(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	next := make(map[string]int, len(names))

	for id := range names {
		count, ok := current[id]
		if !ok {
			count = -1
		}

		next[id] = Perturb(count, s.bounds, s.rnd)
		s.metrics.SetListeners(id, next[id])
	}

	if err = s.store.Set(ctx, next); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = s.store.Prune(ctx, next); err != nil {
		log.Warn().Err(err).Msg("failed to prune listener counts")
	}

	return next, nil
}
