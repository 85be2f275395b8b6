package web

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks report generation outcomes for the /metrics endpoint.
type Metrics struct {
	registry *prometheus.Registry

	reportsGenerated prometheus.Counter
	reportsFailed    *prometheus.CounterVec
	reportDuration   prometheus.Histogram
}

// NewMetrics creates and registers the web shell's metrics on a private
// registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		reportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "schedgen_reports_generated_total",
			Help: "Number of schedule reports generated successfully.",
		}),
		reportsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schedgen_reports_failed_total",
			Help: "Number of failed report generation attempts by error code.",
		}, []string{"error_code"}),
		reportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "schedgen_report_duration_seconds",
			Help:    "Time spent generating one report.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSuccess records a successful generation and its duration.
func (m *Metrics) ObserveSuccess(d time.Duration) {
	m.reportsGenerated.Inc()
	m.reportDuration.Observe(d.Seconds())
}

// ObserveFailure records a failed generation under its error code.
func (m *Metrics) ObserveFailure(errorCode string, d time.Duration) {
	m.reportsFailed.WithLabelValues(errorCode).Inc()
	m.reportDuration.Observe(d.Seconds())
}
