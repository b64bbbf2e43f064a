package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "world_crawler"

// Run results.
const (
	ResultSuccess = "success"
	ResultEmpty   = "empty"
	ResultFailure = "failure"
)

// Metrics holds the crawler collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	records     *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
}

// New creates the collectors and registers them along with the Go and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Crawl cycles by result.",
		}, []string{"result"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Fetched favorite entries by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of crawl cycles.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful crawl cycle.",
		}),
	}
	m.registry.MustRegister(
		m.runs,
		m.records,
		m.duration,
		m.lastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRun records one finished cycle.
func (m *Metrics) ObserveRun(result string, started time.Time) {
	m.runs.WithLabelValues(result).Inc()
	m.duration.Observe(time.Since(started).Seconds())
	if result == ResultSuccess {
		m.lastSuccess.SetToCurrentTime()
	}
}

// AddRecords counts n entries with the given outcome.
func (m *Metrics) AddRecords(outcome string, n int) {
	if n <= 0 {
		return
	}
	m.records.WithLabelValues(outcome).Add(float64(n))
}

// Handler serves the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
