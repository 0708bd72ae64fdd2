// Package handler exposes the registration endpoint.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"marketday/internal/signup/service"
	dErrors "marketday/pkg/domain-errors"
	"marketday/pkg/platform/httputil"
	"marketday/pkg/requestcontext"
)

// SignupService is the workflow surface this handler consumes.
type SignupService interface {
	SignUp(ctx context.Context, req service.Request) error
}

type Handler struct {
	signup SignupService
	logger *slog.Logger
}

func New(signup SignupService, logger *slog.Logger) *Handler {
	return &Handler{signup: signup, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/signup", h.handleSignup)
}

type signupRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	GroupPhone string `json:"groupPhone"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidFormat, "request body must be a JSON object"))
		return
	}

	if email := strings.TrimSpace(req.Email); email != "" && !govalidator.IsEmail(email) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidFormat, "email address is not valid"))
		return
	}

	err := h.signup.SignUp(r.Context(), service.Request{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		GroupPhone: req.GroupPhone,
	})
	if err != nil {
		h.logger.Info("signup rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"reason", string(dErrors.CodeOf(err)))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
