package listener_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"airwave/config"
	"airwave/internal/domains/listener"
	listenerMocks "airwave/internal/domains/listener/mocks"
	stationMocks "airwave/internal/domains/station/service/mocks"
	"airwave/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func simulatorConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Listener.TickSeconds = 30
	cfg.Listener.Min = 5
	cfg.Listener.Max = 500
	cfg.Listener.MaxStep = 10

	return cfg
}

func TestSimulator_Tick(t *testing.T) {
	ctrl := gomock.NewController(t)
	stations := stationMocks.NewMockStation(ctrl)
	store, _ := newStore(t)
	m := metrics.New("test", prometheus.NewRegistry())

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, map[string]int{"s1": 100, "gone": 9}))

	stations.EXPECT().Names(gomock.Any()).Return(map[string]string{"s1": "Deep House FM", "s2": "Techno Bunker"}, nil)

	sim := listener.NewSimulator(store, stations, simulatorConfig(), m).WithRand(rand.New(rand.NewPCG(3, 4)))

	counts, err := sim.Tick(ctx)
	require.NoError(t, err)

	require.Len(t, counts, 2)
	assert.InDelta(t, 100, counts["s1"], 10)
	assert.GreaterOrEqual(t, counts["s2"], 5)
	assert.LessOrEqual(t, counts["s2"], 500)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, all)

	assert.InDelta(t, float64(counts["s1"]), testutil.ToFloat64(m.ListenerCount.WithLabelValues("s1")), 0)
}

func TestSimulator_TickStationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	stations := stationMocks.NewMockStation(ctrl)
	store := listenerMocks.NewMockStore(ctrl)

	stations.EXPECT().Names(gomock.Any()).Return(nil, errors.New("db down"))

	sim := listener.NewSimulator(store, stations, simulatorConfig(), metrics.New("test", prometheus.NewRegistry()))

	_, err := sim.Tick(context.Background())
	assert.Error(t, err)
}

func TestSimulator_RunStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	stations := stationMocks.NewMockStation(ctrl)
	store := listenerMocks.NewMockStore(ctrl)

	stations.EXPECT().Names(gomock.Any()).Return(map[string]string{}, nil).AnyTimes()
	store.EXPECT().All(gomock.Any()).Return(map[string]int{}, nil).AnyTimes()
	store.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	sim := listener.NewSimulator(store, stations, simulatorConfig(), metrics.New("test", prometheus.NewRegistry()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sim.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop")
	}
}
