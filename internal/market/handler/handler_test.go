package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"marketday/internal/market/service"
	dErrors "marketday/pkg/domain-errors"
	"marketday/pkg/testutil"
)

type stubStatus struct {
	status *service.Status
	err    error
}

func (s *stubStatus) Status(context.Context) (*service.Status, error) {
	return s.status, s.err
}

func newRouter(stub *stubStatus) http.Handler {
	r := chi.NewRouter()
	New(stub, slog.Default()).Register(r)
	return r
}

func TestStatusOpenMarket(t *testing.T) {
	router := newRouter(&stubStatus{status: &service.Status{
		IsOpen:           true,
		HasCurrentMarket: true,
		MarketDate:       "2025-01-17",
		Color:            "green",
		CheckInStart:     "8:00 AM",
		CheckInEnd:       "12:00 PM",
		NextMarketString: "January 24, 2025 at 9:00 AM PST",
	}})

	req := testutil.NewJSONRequest(t, http.MethodGet, "/", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[statusResponse](t, rr)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, "2025-01-17", resp.MarketDate)
	assert.Equal(t, "green", resp.Color)
	assert.Equal(t, "8:00 AM", resp.CheckInStart)
	assert.Equal(t, "12:00 PM", resp.CheckInEnd)
	assert.Equal(t, "January 24, 2025 at 9:00 AM PST", resp.NextMarketString)
}

func TestStatusClosedOmitsMarketFields(t *testing.T) {
	router := newRouter(&stubStatus{status: &service.Status{ResetNotice: true}})

	req := testutil.NewJSONRequest(t, http.MethodGet, "/", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.ReadBody(t, rr)
	assert.NotContains(t, string(body), "marketDate")
	assert.NotContains(t, string(body), "color")
	assert.Contains(t, string(body), `"resetNotice":true`)
}

func TestStatusRemoteFailure(t *testing.T) {
	router := newRouter(&stubStatus{err: dErrors.New(dErrors.CodeRemote, "scheduleUnavailable")})

	req := testutil.NewJSONRequest(t, http.MethodGet, "/", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(t, rr, http.StatusBadGateway, "remoteError")
}
