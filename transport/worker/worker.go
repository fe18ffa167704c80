// Package worker runs the background jobs: the listener count simulator and
// the booking events consumer that keeps schedule caches fresh on every instance.
package worker

import (
	"context"
	"sync"

	"airwave/config"
	"airwave/infras/kafka"
	"airwave/internal/domains/booking/event"
	"airwave/internal/domains/listener"
	"airwave/shared/cache"

	"github.com/rs/zerolog/log"
)

type Worker struct {
	config    *config.Config
	simulator *listener.Simulator
	kafka     kafka.Client
	cache     cache.RedisCache
}

func New(cfg *config.Config, simulator *listener.Simulator, client kafka.Client, c cache.RedisCache) *Worker {
	return &Worker{
		config:    cfg,
		simulator: simulator,
		kafka:     client,
		cache:     c,
	}
}

// Run blocks until ctx is done and every job has returned.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		w.simulator.Run(ctx)
	}()

	if len(w.config.Kafka.Brokers) == 0 {
		log.Warn().Msg("Kafka brokers are not configured, booking events consumer disabled")
	} else {
		wg.Add(1)

		go func() {
			defer wg.Done()

			topic := w.config.Kafka.Topics.BookingEvents
			if err := w.kafka.Consume(ctx, w.config.Kafka.ConsumerGroup, topic, event.CacheInvalidator(w.cache)); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("booking events consumer stopped")
			}
		}()
	}

	wg.Wait()

	if err := w.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close Kafka client")
	}

	log.Info().Msg("worker stopped")
}
