package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"airwave/config"
	"airwave/infras/kafka"
	kafkaMocks "airwave/infras/kafka/mocks"
	"airwave/internal/domains/booking/event"
	"airwave/internal/domains/booking/model"
	cacheMocks "airwave/shared/cache/mocks"
	"airwave/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func booking() model.Booking {
	return model.Booking{
		ID:        "b1",
		StationID: "s1",
		HostID:    "h1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Approved:  true,
	}
}

func TestNew(t *testing.T) {
	evt := event.New(event.TypeCreated, booking(), "h1", start)

	assert.Equal(t, event.TypeCreated, evt.Type)
	assert.Equal(t, "b1", evt.BookingID)
	assert.Equal(t, "s1", evt.StationID)
	assert.Equal(t, "approved", evt.Status)
	assert.Equal(t, start, evt.OccurredAt)
}

func TestTypeForDecision(t *testing.T) {
	b := booking()
	assert.Equal(t, event.TypeApproved, event.TypeForDecision(b))

	b.Approved, b.Rejected = false, true
	assert.Equal(t, event.TypeRejected, event.TypeForDecision(b))
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name        string
		publishErr  error
		wantSuccess float64
		wantFailure float64
	}{
		{name: "published", wantSuccess: 1},
		{name: "broker error", publishErr: errors.New("broker down"), wantFailure: 1},
		{name: "kafka disabled", publishErr: kafka.ErrNoBrokers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)

			cfg := &config.Config{}
			cfg.Kafka.Topics.BookingEvents = "booking-events"

			m := metrics.New("test", prometheus.NewRegistry())
			evt := event.New(event.TypeCreated, booking(), "h1", start)

			client.EXPECT().
				Publish(gomock.Any(), "booking-events", kafka.Message{Key: "s1", Value: evt}).
				Return(tt.publishErr)

			event.NewPublisher(client, cfg, m).Publish(context.Background(), evt)

			assert.InDelta(t, tt.wantSuccess, testutil.ToFloat64(m.EventsPublished.WithLabelValues(string(event.TypeCreated), metrics.StatusSuccess)), 0)
			assert.InDelta(t, tt.wantFailure, testutil.ToFloat64(m.EventsPublished.WithLabelValues(string(event.TypeCreated), metrics.StatusFailure)), 0)
		})
	}
}

func TestCacheInvalidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := cacheMocks.NewMockRedisCache(ctrl)

	evt := event.New(event.TypeUpdated, booking(), "h1", start)

	msg := kafka.Message{Key: evt.StationID, Value: evt}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	c.EXPECT().Delete(gomock.Any(), model.CacheGet+":b1").Return(nil)
	c.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	require.NoError(t, event.CacheInvalidator(c)(context.Background(), raw))
}

func TestCacheInvalidator_SkipsUndecodable(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := cacheMocks.NewMockRedisCache(ctrl)

	handler := event.CacheInvalidator(c)

	msg := kafka.Message{Key: "s1", Value: "not an event"}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.NoError(t, handler(context.Background(), raw))
}
