package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for directory-service calls.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec
}

// New creates and registers all directory client metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketday_directory_request_duration_seconds",
			Help:    "Duration of directory service calls by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		RequestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marketday_directory_request_errors_total",
			Help: "Total directory service transport failures by operation",
		}, []string{"operation"}),
	}
}

// ObserveRequest records one directory call.
func (m *Metrics) ObserveRequest(operation string, d time.Duration, transportErr bool) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(operation).Observe(d.Seconds())
	if transportErr {
		m.RequestErrors.WithLabelValues(operation).Inc()
	}
}
