// Package service implements the registration saga. The registry insert and
// the group assignment live in the external directory service with no
// transaction spanning them, so a failed group step compensates by removing
// the freshly inserted registry entry.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"marketday/internal/audit"
	"marketday/internal/directory"
	"marketday/internal/signup/metrics"
	dErrors "marketday/pkg/domain-errors"
	"marketday/pkg/phone"
	"marketday/pkg/requestcontext"
)

// MessageBanned is returned for blacklisted phones. Deliberately fixed so
// the response does not confirm what the blacklist knows.
const MessageBanned = "Sorry, but you have been banned from Serving Good's Alpine market. If you believe this is a mistake, please contact an administrator."

// DirectoryClient is the slice of the directory service the signup saga
// needs.
type DirectoryClient interface {
	CheckBlacklist(ctx context.Context, phone string) (bool, error)
	AddToRegistry(ctx context.Context, p directory.Participant) error
	RemoveFromRegistry(ctx context.Context, phone string) error
	UpdateGroup(ctx context.Context, primary, secondary string) error
}

// Service runs registrations against the directory service.
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

// Request is a registration submission. GroupPhone optionally lists
// companion phones, comma-separated.
type Request struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	GroupPhone string
}

// SignUp runs the saga: field gate, blacklist gate, registry insert, group
// assignment. Once the insert has happened every later failure triggers a
// compensating removal so a rejected submission never leaves a half
// registered participant behind.
func (s *Service) SignUp(ctx context.Context, req Request) error {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)

	key, ok := phone.Normalize(strings.TrimSpace(req.Phone))
	if !ok || first == "" || last == "" || email == "" {
		return s.reject(ctx, "", dErrors.New(dErrors.CodeMissingFields, "Please provide all required fields."))
	}

	banned, err := s.directory.CheckBlacklist(ctx, key)
	if err != nil {
		return s.reject(ctx, key, s.mapRemote(ctx, err, "check blacklist"))
	}
	if banned {
		return s.reject(ctx, key, dErrors.New(dErrors.CodeBanned, MessageBanned))
	}

	if err := s.directory.AddToRegistry(ctx, directory.Participant{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     key,
	}); err != nil {
		var re *directory.RemoteError
		if errors.As(err, &re) {
			if strings.Contains(strings.ToLower(re.Message), "already") {
				return s.reject(ctx, key, dErrors.Wrap(err, dErrors.CodeAlreadyExists, re.Message))
			}
			return s.reject(ctx, key, dErrors.Wrap(err, dErrors.CodeRemote, re.Message))
		}
		return s.reject(ctx, key, s.internal(ctx, err, "add to registry"))
	}

	if err := s.assignGroup(ctx, key, req.GroupPhone); err != nil {
		s.rollback(ctx, key)
		return s.reject(ctx, key, err)
	}

	s.metrics.IncrementSignups()
	s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionSignup,
		Subject: audit.MaskSubject(key),
		Outcome: audit.OutcomeSuccess,
	})
	return nil
}

// assignGroup links the new participant to each companion, fail-fast. With
// no companions the directory still gets a singleton call so every
// registered participant belongs to exactly one group.
func (s *Service) assignGroup(ctx context.Context, key, groupPhone string) error {
	groupPhone = strings.TrimSpace(groupPhone)
	if groupPhone == "" {
		if err := s.directory.UpdateGroup(ctx, key, ""); err != nil {
			return s.mapRemote(ctx, err, "assign singleton group")
		}
		return nil
	}

	for _, raw := range strings.Split(groupPhone, ",") {
		companion, ok := phone.Normalize(strings.TrimSpace(raw))
		if !ok {
			return dErrors.New(dErrors.CodeInvalidFormat, "group phone numbers must contain 10 digits")
		}
		if err := s.directory.UpdateGroup(ctx, key, companion); err != nil {
			return s.mapRemote(ctx, err, "link group member")
		}
	}
	return nil
}

// rollback compensates a registry insert. Best-effort: a failure here is
// logged and counted but does not change the caller's outcome.
func (s *Service) rollback(ctx context.Context, key string) {
	s.metrics.IncrementRollbacks()
	s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionSignupRollback,
		Subject: audit.MaskSubject(key),
		Outcome: audit.OutcomeError,
	})
	if err := s.directory.RemoveFromRegistry(ctx, key); err != nil && s.logger != nil {
		s.logger.Error("compensating registry removal failed",
			"request_id", requestcontext.RequestID(ctx), "error", err)
	}
}

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
		Action:  audit.ActionSignup,
		Subject: audit.MaskSubject(key),
		Outcome: outcome,
		Reason:  string(code),
	})
	return err
}
