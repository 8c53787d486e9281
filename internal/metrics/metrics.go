// Package metrics exposes Prometheus instrumentation for the HTTP host.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tco-calculator/core/tco"
)

const namespace = "tco"

// Metrics holds the collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	calculations    *prometheus.CounterVec
	undefinedShares prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// New creates and registers every collector
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Scenarios evaluated, by cheaper deployment.",
		}, []string{"winner"}),
		undefinedShares: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undefined_percentage_total",
			Help:      "Comparisons where the on-prem total was zero.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.calculations,
		m.undefinedShares,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveReport records one evaluated scenario
func (m *Metrics) ObserveReport(r tco.Report) {
	m.calculations.WithLabelValues(r.Comparison.Winner.String()).Inc()
	if !r.Comparison.PercentageDefined {
		m.undefinedShares.Inc()
	}
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
