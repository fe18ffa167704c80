package metrics

import (
	"airwave/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeApproved = "approved"
	OutcomePending  = "pending"
	OutcomeRejected = "rejected"

	UpdateRejectedOverlap = "overlap"
	UpdateRejectedStale   = "stale"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the Prometheus collectors exported on /metrics.
type Metrics struct {
	// BookingsTotal counts created bookings by outcome.
	BookingsTotal *prometheus.CounterVec

	// BookingUpdatesRejected counts updates refused by the conflict scan or a stale version.
	BookingUpdatesRejected *prometheus.CounterVec

	// BookingDecisions counts admin approve/reject actions.
	BookingDecisions *prometheus.CounterVec

	HTTPRequestDuration *prometheus.HistogramVec

	// ListenerCount is the simulated live audience per station.
	ListenerCount *prometheus.GaugeVec

	PlayerEvents *prometheus.CounterVec

	TrackPlays prometheus.Counter

	EventsPublished *prometheus.CounterVec
}

// NewRegistry returns the registry served on /metrics, with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func Provide(cfg *config.Config, reg *prometheus.Registry) *Metrics {
	return New(cfg.Metrics.Namespace, reg)
}

// New registers every collector on reg under namespace.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Total number of bookings created, by outcome",
			},
			[]string{"outcome"},
		),

		BookingUpdatesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_updates_rejected_total",
				Help:      "Total number of booking updates refused",
			},
			[]string{"reason"},
		),

		BookingDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_decisions_total",
				Help:      "Total number of manual booking decisions, by resulting status",
			},
			[]string{"outcome"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route", "status"},
		),

		ListenerCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "station_listeners",
				Help:      "Current simulated listener count per station",
			},
			[]string{"station_id"},
		),

		PlayerEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "player_events_total",
				Help:      "Total number of player transport events, by event and result",
			},
			[]string{"event", "status"},
		),

		TrackPlays: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "track_plays_total",
				Help:      "Total number of track plays recorded",
			},
		),

		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Total number of domain events published to Kafka",
			},
			[]string{"type", "status"},
		),
	}
}

func (m *Metrics) IncBooking(outcome string) {
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncBookingUpdateRejected(reason string) {
	m.BookingUpdatesRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncBookingDecision(outcome string) {
	m.BookingDecisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func (m *Metrics) SetListeners(stationID string, count int) {
	m.ListenerCount.WithLabelValues(stationID).Set(float64(count))
}

func (m *Metrics) IncPlayerEvent(event string, ok bool) {
	m.PlayerEvents.WithLabelValues(event, status(ok)).Inc()
}

func (m *Metrics) IncTrackPlay() {
	m.TrackPlays.Inc()
}

func (m *Metrics) IncPublished(eventType string, ok bool) {
	m.EventsPublished.WithLabelValues(eventType, status(ok)).Inc()
}

func status(ok bool) string {
	if ok {
		return StatusSuccess
	}

	return StatusFailure
}
