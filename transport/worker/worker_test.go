package worker_test

import (
	"context"
	"testing"
	"time"

	"airwave/config"
	"airwave/infras/kafka"
	kafkaMocks "airwave/infras/kafka/mocks"
	"airwave/internal/domains/listener"
	listenerMocks "airwave/internal/domains/listener/mocks"
	cacheMocks "airwave/shared/cache/mocks"
	"airwave/shared/metrics"
	"airwave/transport/worker"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

type stations map[string]string

func (s stations) Names(context.Context) (map[string]string, error) {
	return s, nil
}

func newSimulator(ctrl *gomock.Controller, cfg *config.Config) *listener.Simulator {
	store := listenerMocks.NewMockStore(ctrl)
	store.EXPECT().All(gomock.Any()).Return(map[string]int{}, nil).AnyTimes()
	store.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return listener.NewSimulator(store, stations{"s1": "Night Shift"}, cfg, metrics.New("test", prometheus.NewRegistry()))
}

func runUntilCancelled(t *testing.T, w *worker.Worker) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestWorker_ConsumesBookingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.ConsumerGroup = "airwave"
	cfg.Kafka.Topics.BookingEvents = "airwave.booking.events"

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().
		Consume(gomock.Any(), "airwave", "airwave.booking.events", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ kafka.Handler) error {
			<-ctx.Done()

			return nil
		})
	client.EXPECT().Close().Return(nil)

	runUntilCancelled(t, worker.New(cfg, newSimulator(ctrl, cfg), client, cacheMocks.NewMockRedisCache(ctrl)))
}

func TestWorker_WithoutBrokers(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().Close().Return(nil)

	runUntilCancelled(t, worker.New(cfg, newSimulator(ctrl, cfg), client, cacheMocks.NewMockRedisCache(ctrl)))
}
