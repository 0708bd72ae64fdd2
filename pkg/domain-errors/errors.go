// Package domainerrors defines the tagged error taxonomy shared by the
// check-in and signup workflows. Handlers pattern-match on the code rather
// than on error strings, and the HTTP layer maps codes to statuses.
package domainerrors

import "errors"

// Code identifies a workflow failure category. The values double as the
// machine-readable `error` tag on the wire.
type Code string

const (
	// CodeInvalidFormat means the submitted phone did not normalize to a
	// 10-digit identity key. Resolved locally, before any remote call.
	CodeInvalidFormat Code = "invalidFormat"

	// CodeMissingFields means a required registration field was empty.
	CodeMissingFields Code = "missingFields"

	// CodeUserNotRegistered means the directory service has no registry
	// entry for the identity key.
	CodeUserNotRegistered Code = "userNotRegistered"

	// CodeBanned means the identity key is on the blacklist.
	CodeBanned Code = "banned"

	// CodeNoMarket means no current market occurrence exists. The error
	// carries a nextMarketString field describing the next known date.
	CodeNoMarket Code = "noMarket"

	// CodeCheckInNotStarted means the current market's check-in window has
	// not opened yet. The error carries a startTime field.
	CodeCheckInNotStarted Code = "checkInNotStarted"

	// CodeMarketEnded means the check-in window has closed.
	CodeMarketEnded Code = "marketEnded"

	// CodeAlreadyExists means the registry already holds this identity key.
	CodeAlreadyExists Code = "alreadyExists"

	// CodeRemote carries a directory-service error string the workflows do
	// not specifically interpret; the message is passed through verbatim.
	CodeRemote Code = "remoteError"

	// CodeInternal covers timeouts, transport faults, and anything else
	// unexpected. Never retried.
	CodeInternal Code = "internalError"
)

// Error is a tagged domain error. Fields carries code-specific extras such
// as the formatted next-market description.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return string(e.Code) + ": " + e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.err
}

// New creates a tagged error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap tags an underlying error while preserving it for errors.Is/As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, err: err}
}

// WithField attaches a code-specific detail and returns the same error for
// chaining.
func (e *Error) WithField(key, value string) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]string, 1)
	}
	e.Fields[key] = value
	return e
}

// Field returns the named detail, or "" when absent.
func (e *Error) Field(key string) string {
	return e.Fields[key]
}

// Field extracts the named detail from err, or "" when err is not a tagged
// error or carries no such detail.
func Field(err error, key string) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Field(key)
	}
	return ""
}

// HasCode reports whether err (or anything it wraps) carries the code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// untagged errors so unexpected faults never leak as anything weaker.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
