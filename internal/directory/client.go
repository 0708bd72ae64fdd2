// Package directory is the client of the external directory service: the
// system of record for participants, groups, the blacklist, and the market
// schedule. Every operation is a synchronous request/response against a
// single endpoint, selected by payload shape or query parameter.
//
// The gateway is a pure client of this service and keeps no state of its
// own, so each method returns an explicit result or a tagged error — known
// error signals become sentinels, everything else the service reports comes
// back verbatim as a *RemoteError.
package directory

import (
	"context"
	"encoding/json"
	"errors"
)

// Known directory-service error signals.
var (
	// ErrNotRegistered reports that the identity key has no registry entry.
	ErrNotRegistered = errors.New("user not registered")

	// ErrAlreadyCheckedIn reports that the participant already holds a
	// check-in record for the current market. Callers treat this as
	// success; the directory's queue-number assignment is idempotent per
	// participant and market.
	ErrAlreadyCheckedIn = errors.New("already checked in")
)

// RemoteError carries an error string reported by the directory service for
// conditions this gateway does not specifically interpret. The message is
// preserved verbatim for pass-through to the caller.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return "directory " + e.Op + ": " + e.Message
}

// Market is one market occurrence as the directory service describes it.
// All timestamps are naive local wall-clock values in America/Los_Angeles.
type Market struct {
	Date         string `json:"date"`         // YYYY-MM-DD
	StartTime    string `json:"startTime"`    // HH:MM
	CheckInStart string `json:"checkInStart"` // YYYY-MM-DD HH:MM:SS
	CheckInEnd   string `json:"checkInEnd"`   // YYYY-MM-DD HH:MM:SS
	Color        string `json:"color"`
}

// MarketInfo is the directory's market schedule snapshot. Either market may
// be absent.
type MarketInfo struct {
	IsOpen  bool
	Current *Market
	Next    *Market
}

// Participant is a registration record. Phone must already be a normalized
// 10-digit identity key.
type Participant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// NILValue tolerates the directory returning the queue number as either a
// JSON string or a number.
type NILValue string

func (n *NILValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = NILValue(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NILValue(num.String())
	return nil
}

// QueueNumber is the result of a NIL retrieval. FirstName may be populated
// even when the lookup fails, so callers can address the participant in
// error messages.
type QueueNumber struct {
	NIL       string
	FirstName string
}

// Client is the directory-service collaborator interface. Implementations
// must be safe for concurrent use; the workflows are stateless and call it
// from every request.
//
//go:generate mockgen -source=client.go -destination=mocks/client_mocks.go -package=mocks Client
type Client interface {
	// MarketInfo fetches the open flag plus current and next market.
	MarketInfo(ctx context.Context) (MarketInfo, error)

	// ValidatePhone reports whether the identity key is registered: nil
	// when registered, ErrNotRegistered when not, *RemoteError otherwise.
	ValidatePhone(ctx context.Context, phone string) error

	// CheckBlacklist reports whether the identity key is banned.
	CheckBlacklist(ctx context.Context, phone string) (bool, error)

	// AddToRegistry inserts a participant. The directory enforces identity
	// key uniqueness server-side; a duplicate comes back as *RemoteError
	// with the directory's own message.
	AddToRegistry(ctx context.Context, p Participant) error

	// RemoveFromRegistry deletes a registry entry. Used only as the
	// compensating action after a failed group assignment; callers treat
	// it as best-effort.
	RemoveFromRegistry(ctx context.Context, phone string) error

	// UpdateGroup links secondary into primary's group. An empty secondary
	// asks the directory to place primary in a singleton group.
	UpdateGroup(ctx context.Context, primary, secondary string) error

	// RecordCheckIn records a check-in for the identity key against the
	// current market. Returns ErrAlreadyCheckedIn for the known
	// re-submission signal.
	RecordCheckIn(ctx context.Context, phone string) error

	// QueueNumber retrieves the assigned NIL for the identity key. On a
	// directory-reported error the returned QueueNumber still carries any
	// first name the directory included.
	QueueNumber(ctx context.Context, phone string) (QueueNumber, error)
}
