// Package event publishes booking changes to Kafka and consumes them to keep
// the schedule caches in step across instances.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"airwave/config"
	"airwave/infras/kafka"
	"airwave/internal/domains/booking/engine"
	"airwave/internal/domains/booking/model"
	"airwave/shared"
	"airwave/shared/cache"
	"airwave/shared/metrics"
	"airwave/shared/timezone"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/rs/zerolog/log"
)

type Type string

const (
	TypeCreated  Type = "booking.created"
	TypeUpdated  Type = "booking.updated"
	TypeApproved Type = "booking.approved"
	TypeRejected Type = "booking.rejected"
	TypeDeleted  Type = "booking.deleted"
)

// Event is the JSON value written to the booking events topic, keyed by station id.
type Event struct {
	Type       Type      `json:"type"`
	BookingID  string    `json:"booking_id"`
	StationID  string    `json:"station_id"`
	HostID     string    `json:"host_id"`
	Status     string    `json:"status"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(eventType Type, booking model.Booking, actor string, at time.Time) Event {
	return Event{
		Type:       eventType,
		BookingID:  booking.ID,
		StationID:  booking.StationID,
		HostID:     booking.HostID,
		Status:     string(engine.StatusOf(booking)),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Actor:      actor,
		OccurredAt: at,
	}
}

// TypeForDecision maps the outcome of an approve or reject call to its event type.
func TypeForDecision(booking model.Booking) Type {
	if engine.StatusOf(booking) == engine.StatusApproved {
		return TypeApproved
	}

	return TypeRejected
}

type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

type publisherImpl struct {
	client  kafka.Client
	topic   string
	metrics *metrics.Metrics
}

func NewPublisher(client kafka.Client, cfg *config.Config, m *metrics.Metrics) Publisher {
	return &publisherImpl{
		client:  client,
		topic:   cfg.Kafka.Topics.BookingEvents,
		metrics: m,
	}
}

// Publish sends evt and records the outcome. Failures are logged, never returned.
func (p *publisherImpl) Publish(ctx context.Context, evt Event) {
	err := p.client.Publish(ctx, p.topic, kafka.Message{Key: evt.StationID, Value: evt})

	switch {
	case errors.Is(err, kafka.ErrNoBrokers):
		log.Debug().Str("type", string(evt.Type)).Msg("kafka disabled, booking event dropped")

		return
	case err != nil:
		log.Error().Err(err).Str("type", string(evt.Type)).Str("booking", evt.BookingID).Msg("failed to publish booking event")
	}

	p.metrics.IncPublished(string(evt.Type), err == nil)
}

// ScheduleKey is the cache key of a station's schedule for the day of start.
func ScheduleKey(stationID string, start time.Time) string {
	return shared.BuildCacheKey(model.CacheSchedule, stationID, timezone.Format(start, "2006-01-02"))
}

// InvalidateStation drops every cached view touched by a change to a booking of evt.StationID.
func InvalidateStation(ctx context.Context, c cache.RedisCache, evt Event) {
	if err := c.Delete(ctx, shared.BuildCacheKey(model.CacheGet, evt.BookingID)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, c, shared.BuildCacheKey(model.CacheSchedule, evt.StationID))
	shared.InvalidateCaches(ctx, c, model.CacheGetAll)
	shared.InvalidateCaches(ctx, c, model.CacheCount)
}

// CacheInvalidator returns the consumer handler used by the worker.
func CacheInvalidator(c cache.RedisCache) kafka.Handler {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		evt, err := kafka.Decode[Event](msg)
		if err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping undecodable booking event")

			return nil
		}

		InvalidateStation(ctx, c, evt)

		log.Debug().Str("type", string(evt.Type)).Str("station", evt.StationID).Msg("booking caches invalidated")

		return nil
	}
}
