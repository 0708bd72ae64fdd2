// Package handler exposes the landing market-status query.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketday/internal/market/service"
	"marketday/pkg/platform/httputil"
)

// MarketStatus is the resolver surface this handler consumes.
type MarketStatus interface {
	Status(ctx context.Context) (*service.Status, error)
}

type Handler struct {
	market MarketStatus
	logger *slog.Logger
}

func New(market MarketStatus, logger *slog.Logger) *Handler {
	return &Handler{market: market, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleStatus)
}

type statusResponse struct {
	IsOpen           bool   `json:"isOpen"`
	NextMarketString string `json:"nextMarketString"`
	MarketDate       string `json:"marketDate,omitempty"`
	Color            string `json:"color,omitempty"`
	CheckInStart     string `json:"checkInStart"`
	CheckInEnd       string `json:"checkInEnd"`
	ResetNotice      bool   `json:"resetNotice"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.market.Status(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, statusResponse{
		IsOpen:           st.IsOpen,
		NextMarketString: st.NextMarketString,
		MarketDate:       st.MarketDate,
		Color:            st.Color,
		CheckInStart:     st.CheckInStart,
		CheckInEnd:       st.CheckInEnd,
		ResetNotice:      st.ResetNotice,
	})
}
