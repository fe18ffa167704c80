package metrics_test

import (
	"testing"

	"airwave/config"
	"airwave/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("airwave", reg)

	m.IncBooking(metrics.OutcomeApproved)
	m.IncBooking(metrics.OutcomeApproved)
	m.IncBooking(metrics.OutcomeRejected)
	m.IncBookingUpdateRejected(metrics.UpdateRejectedStale)
	m.SetListeners("s1", 120)
	m.IncPlayerEvent("fail", false)
	m.IncTrackPlay()
	m.IncPublished("booking.created", true)

	assert.InDelta(t, 2, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(metrics.OutcomeApproved)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(metrics.OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.BookingUpdatesRejected.WithLabelValues(metrics.UpdateRejectedStale)), 0)
	assert.InDelta(t, 120, testutil.ToFloat64(m.ListenerCount.WithLabelValues("s1")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PlayerEvents.WithLabelValues("fail", metrics.StatusFailure)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TrackPlays), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublished.WithLabelValues("booking.created", metrics.StatusSuccess)), 0)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New("airwave", prometheus.NewRegistry())
		metrics.New("airwave", prometheus.NewRegistry())
	})
}

func TestProvideUsesConfiguredNamespace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "radio"

	reg := metrics.NewRegistry()
	m := metrics.Provide(cfg, reg)
	m.IncTrackPlay()

	families, err := reg.Gather()
	assert.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	assert.Contains(t, names, "radio_track_plays_total")
	assert.Contains(t, names, "go_goroutines")
}
