package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the HTTP surface.
type Metrics struct {
	registry *prometheus.Registry

	projectsGenerated *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		projectsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "igniter",
			Name:      "projects_generated_total",
			Help:      "Project generation requests by outcome.",
		}, []string{"outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "igniter",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	registry.MustRegister(m.projectsGenerated, m.requestDuration)
	return m
}

// ObserveGeneration counts one generation attempt with its outcome label.
func (m *Metrics) ObserveGeneration(outcome string) {
	m.projectsGenerated.WithLabelValues(outcome).Inc()
}
