package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors exposed at /metrics.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates a self-contained registry with the bot's collectors
// plus the standard Go runtime collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "covidbot",
			Name:      "webhook_requests_total",
			Help:      "Webhook requests by matched intent and terminal outcome.",
		}, []string{"intent", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "covidbot",
			Name:      "webhook_duration_seconds",
			Help:      "Webhook handling duration by disposition.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"disposition"}),
	}

	reg.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest counts one handled webhook request.
func (m *Metrics) RecordRequest(intent, outcome string) {
	m.requests.WithLabelValues(intent, outcome).Inc()
}

// ObserveDuration records how long one webhook request took.
func (m *Metrics) ObserveDuration(disposition string, d time.Duration) {
	m.duration.WithLabelValues(disposition).Observe(d.Seconds())
}
