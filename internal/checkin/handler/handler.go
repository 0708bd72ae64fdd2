// Package handler exposes the participant-facing check-in endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketday/internal/checkin/service"
	dErrors "marketday/pkg/domain-errors"
	"marketday/pkg/platform/httputil"
	"marketday/pkg/requestcontext"
)

// CheckInService is the workflow surface this handler consumes.
type CheckInService interface {
	CheckIn(ctx context.Context, rawPhone string) (*service.Result, error)
	Validate(ctx context.Context, rawPhone string) error
	QueueNumber(ctx context.Context, rawPhone string) (*service.QueueLookup, error)
}

type Handler struct {
	checkin CheckInService
	logger  *slog.Logger
}

func New(checkin CheckInService, logger *slog.Logger) *Handler {
	return &Handler{checkin: checkin, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/checkin", h.handleCheckIn)
	r.Post("/validate", h.handleValidate)
	r.Post("/nil", h.handleQueueNumber)
}

type phoneRequest struct {
	Phone string `json:"phone"`
}

type checkInResponse struct {
	Success          string `json:"success"`
	Color            string `json:"color"`
	MarketDate       string `json:"marketDate"`
	AlreadyCheckedIn bool   `json:"alreadyCheckedIn"`
}

type queueNumberResponse struct {
	NIL       string `json:"NIL"`
	FirstName string `json:"firstName"`
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	phone, ok := h.decodePhone(w, r)
	if !ok {
		return
	}

	res, err := h.checkin.CheckIn(r.Context(), phone)
	if err != nil {
		h.logger.Info("check-in rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"reason", string(dErrors.CodeOf(err)))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, checkInResponse{
		Success:          res.Message,
		Color:            res.Color,
		MarketDate:       res.MarketDate,
		AlreadyCheckedIn: res.AlreadyCheckedIn,
	})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	phone, ok := h.decodePhone(w, r)
	if !ok {
		return
	}

	if err := h.checkin.Validate(r.Context(), phone); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleQueueNumber(w http.ResponseWriter, r *http.Request) {
	phone, ok := h.decodePhone(w, r)
	if !ok {
		return
	}

	res, err := h.checkin.QueueNumber(r.Context(), phone)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, queueNumberResponse{
		NIL:       res.NIL,
		FirstName: res.FirstName,
	})
}

// decodePhone reads the JSON body. A body that does not parse is handled
// the same as a malformed phone.
func (h *Handler) decodePhone(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req phoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidFormat, "request body must be a JSON object"))
		return "", false
	}
	return req.Phone, true
}
