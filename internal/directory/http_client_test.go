package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureServer records the last request and answers with a fixed body.
type captureServer struct {
	t        *testing.T
	method   string
	rawQuery string
	payload  map[string]json.RawMessage
	status   int
	body     string
}

func (s *captureServer) start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.method = r.Method
		s.rawQuery = r.URL.RawQuery
		s.payload = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&s.payload)
		}
		status := s.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(s.body))
	}))
}

func newTestClient(url string) *HTTPClient {
	return NewHTTPClient(url, 5*time.Second)
}

func TestMarketInfo(t *testing.T) {
	srv := &captureServer{t: t, body: `{
		"isOpen": true,
		"currentMarket": {"date":"2025-01-17","startTime":"09:00","checkInStart":"2025-01-17 08:00:00","checkInEnd":"2025-01-17 12:00:00","color":"green"},
		"nextMarket": {"date":"2025-01-24","startTime":"09:00"}
	}`}
	ts := srv.start()
	defer ts.Close()

	info, err := newTestClient(ts.URL).MarketInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, srv.method)
	assert.Equal(t, "marketInfo=true", srv.rawQuery)
	assert.True(t, info.IsOpen)
	require.NotNil(t, info.Current)
	assert.Equal(t, "2025-01-17", info.Current.Date)
	assert.Equal(t, "green", info.Current.Color)
	require.NotNil(t, info.Next)
	assert.Equal(t, "2025-01-24", info.Next.Date)
}

func TestMarketInfoAbsentMarkets(t *testing.T) {
	srv := &captureServer{t: t, body: `{"isOpen": false}`}
	ts := srv.start()
	defer ts.Close()

	info, err := newTestClient(ts.URL).MarketInfo(context.Background())
	require.NoError(t, err)
	assert.Nil(t, info.Current)
	assert.Nil(t, info.Next)
}

func TestValidatePhone(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).ValidatePhone(context.Background(), "6195551234")
		require.NoError(t, err)
		assert.JSONEq(t, `"6195551234"`, string(srv.payload["validatePhone"]))
	})

	t.Run("not registered", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"error":"userNotRegistered"}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).ValidatePhone(context.Background(), "6195551234")
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("unknown error passes through", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"error":"sheetLocked"}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).ValidatePhone(context.Background(), "6195551234")
		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "sheetLocked", re.Message)
	})
}

func TestCheckBlacklist(t *testing.T) {
	srv := &captureServer{t: t, body: `{"banned": true}`}
	ts := srv.start()
	defer ts.Close()

	banned, err := newTestClient(ts.URL).CheckBlacklist(context.Background(), "6195551234")
	require.NoError(t, err)
	assert.True(t, banned)
	assert.JSONEq(t, `"6195551234"`, string(srv.payload["checkBlacklist"]))
}

func TestAddToRegistry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"success": true}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).AddToRegistry(context.Background(), Participant{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "6195551234",
		})
		require.NoError(t, err)

		var p Participant
		require.NoError(t, json.Unmarshal(srv.payload["addMasterList"], &p))
		assert.Equal(t, "6195551234", p.Phone)
		assert.Equal(t, "Ada", p.FirstName)
	})

	t.Run("duplicate message passes through verbatim", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"error":"This phone number is already registered."}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).AddToRegistry(context.Background(), Participant{Phone: "6195551234"})
		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "This phone number is already registered.", re.Message)
	})
}

func TestUpdateGroup(t *testing.T) {
	t.Run("companion link", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).UpdateGroup(context.Background(), "6195551234", "6195555678")
		require.NoError(t, err)

		var group map[string]string
		require.NoError(t, json.Unmarshal(srv.payload["updateGroup"], &group))
		assert.Equal(t, "6195551234", group["primaryPhone"])
		assert.Equal(t, "6195555678", group["secondaryPhone"])
	})

	t.Run("singleton omits secondaryPhone", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).UpdateGroup(context.Background(), "6195551234", "")
		require.NoError(t, err)

		var group map[string]string
		require.NoError(t, json.Unmarshal(srv.payload["updateGroup"], &group))
		assert.Equal(t, "6195551234", group["primaryPhone"])
		_, present := group["secondaryPhone"]
		assert.False(t, present)
	})
}

func TestRecordCheckIn(t *testing.T) {
	t.Run("first check-in", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).RecordCheckIn(context.Background(), "6195551234")
		require.NoError(t, err)
		assert.JSONEq(t, `"6195551234"`, string(srv.payload["input"]))
	})

	t.Run("already checked in maps to sentinel", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"error":"alreadyCheckedIn"}`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).RecordCheckIn(context.Background(), "6195551234")
		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	})
}

func TestQueueNumber(t *testing.T) {
	t.Run("numeric NIL", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"NIL": 42, "firstName": "Ada"}`}
		ts := srv.start()
		defer ts.Close()

		qn, err := newTestClient(ts.URL).QueueNumber(context.Background(), "6195551234")
		require.NoError(t, err)
		assert.Equal(t, "42", qn.NIL)
		assert.Equal(t, "Ada", qn.FirstName)
	})

	t.Run("string NIL", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"NIL": "42"}`}
		ts := srv.start()
		defer ts.Close()

		qn, err := newTestClient(ts.URL).QueueNumber(context.Background(), "6195551234")
		require.NoError(t, err)
		assert.Equal(t, "42", qn.NIL)
	})

	t.Run("error keeps first name", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{"error":"nilNotAssigned","firstName":"Ada"}`}
		ts := srv.start()
		defer ts.Close()

		qn, err := newTestClient(ts.URL).QueueNumber(context.Background(), "6195551234")
		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "nilNotAssigned", re.Message)
		assert.Equal(t, "Ada", qn.FirstName)
	})

	t.Run("neither NIL nor error", func(t *testing.T) {
		srv := &captureServer{t: t, body: `{}`}
		ts := srv.start()
		defer ts.Close()

		_, err := newTestClient(ts.URL).QueueNumber(context.Background(), "6195551234")
		require.Error(t, err)
	})
}

func TestTransportFailures(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := &captureServer{t: t, status: http.StatusBadGateway, body: `oops`}
		ts := srv.start()
		defer ts.Close()

		err := newTestClient(ts.URL).ValidatePhone(context.Background(), "6195551234")
		require.Error(t, err)
		var re *RemoteError
		assert.False(t, errors.As(err, &re), "transport faults must not look like directory errors")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := &captureServer{t: t, body: `<html>maintenance</html>`}
		ts := srv.start()
		defer ts.Close()

		_, err := newTestClient(ts.URL).MarketInfo(context.Background())
		require.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		client := NewHTTPClient(ts.URL, 10*time.Millisecond)
		err := client.ValidatePhone(context.Background(), "6195551234")
		require.Error(t, err)
	})
}
