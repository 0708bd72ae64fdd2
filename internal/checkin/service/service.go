// Package service implements the check-in workflow: a four-step pipeline
// over the directory service where any step's failure short-circuits the
// rest. It also carries the standalone phone validation and queue-number
// lookups that share the same identity gate.
package service

import (
	"context"
	"errors"
	"log/slog"

	"marketday/internal/audit"
	"marketday/internal/checkin/metrics"
	"marketday/internal/directory"
	"marketday/internal/market"
	dErrors "marketday/pkg/domain-errors"
	"marketday/pkg/phone"
	"marketday/pkg/requestcontext"
)

// Result messages shown to participants. The repeat message matters: a
// re-submission is success, not an error, because the directory's NIL
// assignment is idempotent per participant and market.
const (
	MessageCheckedIn        = "Check-in successful. Please wait for your NIL number."
	MessageAlreadyCheckedIn = "You are already checked in. Continuing to wait for your NIL."
	MessageNoFutureMarket   = "No Future Market Date Found"
)

// DirectoryClient is the slice of the directory service the check-in
// workflow needs.
type DirectoryClient interface {
	ValidatePhone(ctx context.Context, phone string) error
	MarketInfo(ctx context.Context) (directory.MarketInfo, error)
	RecordCheckIn(ctx context.Context, phone string) error
	QueueNumber(ctx context.Context, phone string) (directory.QueueNumber, error)
}

// Service orchestrates check-in against the directory service. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	directory DirectoryClient
	logger    *slog.Logger
	metrics   *metrics.Metrics
	audit     *audit.Recorder
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditRecorder(r *audit.Recorder) Option {
	return func(s *Service) {
		s.audit = r
	}
}

// New constructs a Service.
func New(directory DirectoryClient, opts ...Option) *Service {
	s := &Service{directory: directory}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is a successful check-in. Color and MarketDate drive the caller's
// visual confirmation.
type Result struct {
	Message          string
	Color            string
	MarketDate       string
	AlreadyCheckedIn bool
}

// CheckIn runs the pipeline: normalize, validate identity, gate on the
// market window, record the check-in. Identity is validated before the
// market is resolved, so an unregistered phone never learns market timing.
func (s *Service) CheckIn(ctx context.Context, rawPhone string) (*Result, error) {
	key, ok := phone.Normalize(rawPhone)
	if !ok {
		return nil, s.reject(ctx, "", dErrors.New(dErrors.CodeInvalidFormat, "phone number must contain 10 digits"))
	}

	if err := s.directory.ValidatePhone(ctx, key); err != nil {
		if errors.Is(err, directory.ErrNotRegistered) {
			return nil, s.reject(ctx, key, dErrors.New(dErrors.CodeUserNotRegistered, "phone number is not registered"))
		}
		return nil, s.reject(ctx, key, s.mapRemote(ctx, err, "validate phone"))
	}

	info, err := s.directory.MarketInfo(ctx)
	if err != nil {
		return nil, s.reject(ctx, key, s.mapRemote(ctx, err, "fetch market info"))
	}

	current := info.Current
	if current == nil {
		next := MessageNoFutureMarket
		if info.Next != nil {
			next = "The next market is on " + market.FormatLongDate(info.Next.Date)
		}
		return nil, s.reject(ctx, key, dErrors.New(dErrors.CodeNoMarket, "no market is currently running").
			WithField("nextMarketString", next))
	}

	start, err := market.ParseLocal(current.CheckInStart)
	if err != nil {
		return nil, s.reject(ctx, key, dErrors.Wrap(err, dErrors.CodeInternal, "malformed check-in window"))
	}
	end, err := market.ParseLocal(current.CheckInEnd)
	if err != nil {
		return nil, s.reject(ctx, key, dErrors.Wrap(err, dErrors.CodeInternal, "malformed check-in window"))
	}

	switch market.EvaluateWindow(requestcontext.Now(ctx), start, end) {
	case market.WindowNotStarted:
		return nil, s.reject(ctx, key, dErrors.New(dErrors.CodeCheckInNotStarted, "check-in has not started yet").
			WithField("startTime", market.FormatClock12(market.ClockOf(current.CheckInStart))))
	case market.WindowEnded:
		return nil, s.reject(ctx, key, dErrors.New(dErrors.CodeMarketEnded, "the market has ended"))
	}

	if err := s.directory.RecordCheckIn(ctx, key); err != nil {
		if errors.Is(err, directory.ErrAlreadyCheckedIn) {
			s.recordSuccess(ctx, key, true)
			return &Result{
				Message:          MessageAlreadyCheckedIn,
				Color:            current.Color,
				MarketDate:       current.Date,
				AlreadyCheckedIn: true,
			}, nil
		}
		return nil, s.reject(ctx, key, s.mapRemote(ctx, err, "record check-in"))
	}

	s.recordSuccess(ctx, key, false)
	return &Result{
		Message:    MessageCheckedIn,
		Color:      current.Color,
		MarketDate: current.Date,
	}, nil
}

// Validate checks whether a raw phone belongs to a registered participant
// without touching the market schedule.
func (s *Service) Validate(ctx context.Context, rawPhone string) error {
	key, ok := phone.Normalize(rawPhone)
	if !ok {
		return dErrors.New(dErrors.CodeInvalidFormat, "phone number must contain 10 digits")
	}
	if err := s.directory.ValidatePhone(ctx, key); err != nil {
		if errors.Is(err, directory.ErrNotRegistered) {
			return dErrors.New(dErrors.CodeUserNotRegistered, "phone number is not registered")
		}
		return s.mapRemote(ctx, err, "validate phone")
	}
	return nil
}

// QueueLookup is a successful NIL retrieval.
type QueueLookup struct {
	NIL       string
	FirstName string
}

// QueueNumber retrieves the NIL assigned to a participant. Directory errors
// keep any first name the directory included, so callers can address the
// participant while telling them no NIL is assigned yet.
func (s *Service) QueueNumber(ctx context.Context, rawPhone string) (*QueueLookup, error) {
	key, ok := phone.Normalize(rawPhone)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidFormat, "phone number must contain 10 digits")
	}

	qn, err := s.directory.QueueNumber(ctx, key)
	if err != nil {
		var re *directory.RemoteError
		if errors.As(err, &re) {
			derr := dErrors.Wrap(err, dErrors.CodeRemote, re.Message)
			if qn.FirstName != "" {
				derr = derr.WithField("firstName", qn.FirstName)
			}
			return nil, derr
		}
		return nil, s.internal(ctx, err, "retrieve queue number")
	}
	return &QueueLookup{NIL: qn.NIL, FirstName: qn.FirstName}, nil
}

// mapRemote converts a directory failure into the domain taxonomy: reported
// error strings pass through verbatim, transport faults become internal.
func (s *Service) mapRemote(ctx context.Context, err error, op string) error {
	var re *directory.RemoteError
	if errors.As(err, &re) {
		return dErrors.Wrap(err, dErrors.CodeRemote, re.Message)
	}
	return s.internal(ctx, err, op)
}

func (s *Service) internal(ctx context.Context, err error, op string) error {
	if s.logger != nil {
		s.logger.Error("directory call failed",
			"request_id", requestcontext.RequestID(ctx), "op", op, "error", err)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "directory service unavailable")
}

func (s *Service) reject(ctx context.Context, key string, err error) error {
	code := dErrors.CodeOf(err)
	s.metrics.IncrementFailures(string(code))

	outcome := audit.OutcomeDenied
	if code == dErrors.CodeInternal || code == dErrors.CodeRemote {
		outcome = audit.OutcomeError
	}
	s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionCheckIn,
		Subject: audit.MaskSubject(key),
		Outcome: outcome,
		Reason:  string(code),
	})
	return err
}

func (s *Service) recordSuccess(ctx context.Context, key string, repeat bool) {
	s.metrics.IncrementCheckIns(repeat)
	s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionCheckIn,
		Subject: audit.MaskSubject(key),
		Outcome: audit.OutcomeSuccess,
	})
}
