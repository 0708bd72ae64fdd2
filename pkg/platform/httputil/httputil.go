// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes and domain errors translate to statuses in one place.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "marketday/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope:
//
//	{"error": <code>, "error_description": <message>, ...code-specific fields}
//
// Internal errors omit the description so upstream fault details never reach
// clients. Untagged errors are treated as internal.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)

	body := map[string]string{"error": string(code)}
	var de *dErrors.Error
	if errors.As(err, &de) {
		if code != dErrors.CodeInternal && de.Message != "" {
			body["error_description"] = de.Message
		}
		for k, v := range de.Fields {
			body[k] = v
		}
	}

	WriteJSON(w, statusFor(code), body)
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeInvalidFormat, dErrors.CodeMissingFields:
		return http.StatusBadRequest
	case dErrors.CodeUserNotRegistered:
		return http.StatusNotFound
	case dErrors.CodeBanned:
		return http.StatusForbidden
	case dErrors.CodeAlreadyExists, dErrors.CodeNoMarket,
		dErrors.CodeCheckInNotStarted, dErrors.CodeMarketEnded:
		return http.StatusConflict
	case dErrors.CodeRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
