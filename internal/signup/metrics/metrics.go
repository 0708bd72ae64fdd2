package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the signup workflow.
type Metrics struct {
	Signups        prometheus.Counter
	SignupFailures *prometheus.CounterVec
	Rollbacks      prometheus.Counter
}

// New creates and registers all signup metrics.
func New() *Metrics {
	return &Metrics{
		Signups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marketday_signups_total",
			Help: "Total completed registrations",
		}),
		SignupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marketday_signup_failures_total",
			Help: "Registration attempts rejected, by reason",
		}, []string{"reason"}),
		Rollbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marketday_signup_rollbacks_total",
			Help: "Registry inserts compensated after a failed group assignment",
		}),
	}
}

// IncrementSignups records a completed registration.
func (m *Metrics) IncrementSignups() {
	if m == nil {
		return
	}
	m.Signups.Inc()
}

// IncrementFailures records a rejected attempt.
func (m *Metrics) IncrementFailures(reason string) {
	if m == nil {
		return
	}
	m.SignupFailures.WithLabelValues(reason).Inc()
}

// IncrementRollbacks records a compensating registry removal.
func (m *Metrics) IncrementRollbacks() {
	if m == nil {
		return
	}
	m.Rollbacks.Inc()
}
