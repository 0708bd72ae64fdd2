package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the check-in workflow.
type Metrics struct {
	CheckIns        prometheus.Counter
	RepeatCheckIns  prometheus.Counter
	CheckInFailures *prometheus.CounterVec
}

// New creates and registers all check-in metrics.
func New() *Metrics {
	return &Metrics{
		CheckIns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marketday_checkins_total",
			Help: "Total successful check-ins, including idempotent re-submissions",
		}),
		RepeatCheckIns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marketday_checkins_repeat_total",
			Help: "Check-in submissions for participants already checked in",
		}),
		CheckInFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marketday_checkin_failures_total",
			Help: "Check-in attempts rejected, by reason",
		}, []string{"reason"}),
	}
}

// IncrementCheckIns records a successful check-in.
func (m *Metrics) IncrementCheckIns(repeat bool) {
	if m == nil {
		return
	}
	m.CheckIns.Inc()
	if repeat {
		m.RepeatCheckIns.Inc()
	}
}

// IncrementFailures records a rejected attempt.
func (m *Metrics) IncrementFailures(reason string) {
	if m == nil {
		return
	}
	m.CheckInFailures.WithLabelValues(reason).Inc()
}
