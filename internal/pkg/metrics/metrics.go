package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service-level Prometheus collectors: one histogram over
// HTTP requests and one counter over lifecycle actions by outcome.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	actionTotal     *prometheus.CounterVec
}

func New() *Metrics {
	return newWithRegisterer(prometheus.DefaultRegisterer)
}

func newWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "posresto_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		actionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "posresto_reservation_actions_total",
			Help: "Reservation lifecycle actions by action name and outcome",
		}, []string{"action", "outcome"}),
	}

	registerer.MustRegister(m.requestDuration, m.actionTotal)
	return m
}

func (m *Metrics) ObserveRequest(method, route, status string, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func (m *Metrics) CountAction(action, outcome string) {
	m.actionTotal.WithLabelValues(action, outcome).Inc()
}
