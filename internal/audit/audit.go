// Package audit captures an append-only trail of check-in and signup
// outcomes. Workflows emit events without blocking; a background worker
// drains them to the structured log. The gateway owns no storage, so the
// log is the sink of record here.
package audit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"marketday/pkg/requestcontext"
)

// Event is emitted from workflow logic to capture key actions. Subject is a
// masked identity key; a full phone number never enters the trail.
type Event struct {
	Timestamp time.Time
	Action    string
	Subject   string
	Outcome   string
	Reason    string
}

// Workflow actions recorded in the trail.
const (
	ActionCheckIn        = "checkin"
	ActionSignup         = "signup"
	ActionSignupRollback = "signup_rollback"
)

// Event outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeDenied  = "denied"
	OutcomeError   = "error"
)

// MaskSubject reduces an identity key to its last four digits for the
// trail.
func MaskSubject(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return "******" + phone[len(phone)-4:]
}

// Metrics counts events that could not be queued.
type Metrics struct {
	Dropped prometheus.Counter
}

// NewMetrics creates and registers audit metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marketday_audit_events_dropped_total",
			Help: "Audit events dropped because the buffer was full",
		}),
	}
}

// Recorder queues events for the worker. A nil *Recorder is a valid no-op
// sink so services can run without audit wiring in tests.
type Recorder struct {
	events  chan Event
	metrics *Metrics
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithMetrics sets the drop counter.
func WithMetrics(m *Metrics) RecorderOption {
	return func(r *Recorder) {
		r.metrics = m
	}
}

// NewRecorder creates a Recorder with the given buffer size.
func NewRecorder(buffer int, opts ...RecorderOption) *Recorder {
	r := &Recorder{events: make(chan Event, buffer)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Emit queues an event without blocking the request path. When the buffer
// is full the event is dropped and counted; the trail is observability, not
// a ledger, and must never slow a check-in down.
func (r *Recorder) Emit(ctx context.Context, e Event) {
	if r == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = requestcontext.Now(ctx)
	}
	select {
	case r.events <- e:
	default:
		if r.metrics != nil {
			r.metrics.Dropped.Inc()
		}
	}
}

// Events exposes the queue to the worker.
func (r *Recorder) Events() <-chan Event {
	return r.events
}
