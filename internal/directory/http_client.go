package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"marketday/internal/directory/metrics"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the directory service over HTTP/JSON. All operations
// share one base URL; the service dispatches on payload shape for POSTs and
// on the marketInfo query parameter for the schedule fetch.
//
// Calls use a fixed timeout and are never retried. A timeout or transport
// fault comes back as a plain wrapped error, which workflows map to their
// internal-error category.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithLogger enables debug logging of directory responses.
func WithLogger(logger *slog.Logger) Option {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *HTTPClient) {
		c.metrics = m
	}
}

// WithHTTPClient overrides the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a client for the directory service at baseURL with
// the given per-call timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		tracer:  otel.Tracer("marketday/internal/directory"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MarketInfo implements Client.
func (c *HTTPClient) MarketInfo(ctx context.Context) (MarketInfo, error) {
	var resp struct {
		IsOpen        bool    `json:"isOpen"`
		CurrentMarket *Market `json:"currentMarket"`
		NextMarket    *Market `json:"nextMarket"`
		Error         string  `json:"error"`
	}
	if err := c.get(ctx, "marketInfo", "marketInfo=true", &resp); err != nil {
		return MarketInfo{}, err
	}
	if resp.Error != "" {
		return MarketInfo{}, &RemoteError{Op: "marketInfo", Message: resp.Error}
	}
	return MarketInfo{
		IsOpen:  resp.IsOpen,
		Current: resp.CurrentMarket,
		Next:    resp.NextMarket,
	}, nil
}

// ValidatePhone implements Client.
func (c *HTTPClient) ValidatePhone(ctx context.Context, phone string) error {
	var resp struct {
		Error string `json:"error"`
	}
	if err := c.post(ctx, "validatePhone", map[string]string{"validatePhone": phone}, &resp); err != nil {
		return err
	}
	switch resp.Error {
	case "":
		return nil
	case "userNotRegistered":
		return ErrNotRegistered
	default:
		return &RemoteError{Op: "validatePhone", Message: resp.Error}
	}
}

// CheckBlacklist implements Client.
func (c *HTTPClient) CheckBlacklist(ctx context.Context, phone string) (bool, error) {
	var resp struct {
		Banned bool   `json:"banned"`
		Error  string `json:"error"`
	}
	if err := c.post(ctx, "checkBlacklist", map[string]string{"checkBlacklist": phone}, &resp); err != nil {
		return false, err
	}
	if resp.Error != "" {
		return false, &RemoteError{Op: "checkBlacklist", Message: resp.Error}
	}
	return resp.Banned, nil
}

// AddToRegistry implements Client.
func (c *HTTPClient) AddToRegistry(ctx context.Context, p Participant) error {
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, "addMasterList", map[string]Participant{"addMasterList": p}, &resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return &RemoteError{Op: "addMasterList", Message: resp.Error}
	}
	return nil
}

// RemoveFromRegistry implements Client. The response body is deliberately
// ignored: this is the compensating action of the signup saga and the
// original failure must win.
func (c *HTTPClient) RemoveFromRegistry(ctx context.Context, phone string) error {
	payload := map[string]map[string]string{
		"removeMasterList": {"primaryPhone": phone},
	}
	return c.post(ctx, "removeMasterList", payload, nil)
}

// UpdateGroup implements Client.
func (c *HTTPClient) UpdateGroup(ctx context.Context, primary, secondary string) error {
	group := map[string]string{"primaryPhone": primary}
	if secondary != "" {
		group["secondaryPhone"] = secondary
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := c.post(ctx, "updateGroup", map[string]map[string]string{"updateGroup": group}, &resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return &RemoteError{Op: "updateGroup", Message: resp.Error}
	}
	return nil
}

// RecordCheckIn implements Client.
func (c *HTTPClient) RecordCheckIn(ctx context.Context, phone string) error {
	var resp struct {
		Error string `json:"error"`
	}
	if err := c.post(ctx, "recordCheckIn", map[string]string{"input": phone}, &resp); err != nil {
		return err
	}
	switch resp.Error {
	case "":
		return nil
	case "alreadyCheckedIn":
		return ErrAlreadyCheckedIn
	default:
		return &RemoteError{Op: "recordCheckIn", Message: resp.Error}
	}
}

// QueueNumber implements Client.
func (c *HTTPClient) QueueNumber(ctx context.Context, phone string) (QueueNumber, error) {
	var resp struct {
		NIL       *NILValue `json:"NIL"`
		FirstName string    `json:"firstName"`
		Error     string    `json:"error"`
	}
	if err := c.post(ctx, "queueNumber", map[string]string{"phone": phone}, &resp); err != nil {
		return QueueNumber{}, err
	}
	if resp.NIL != nil {
		return QueueNumber{NIL: string(*resp.NIL), FirstName: resp.FirstName}, nil
	}
	if resp.Error != "" {
		return QueueNumber{FirstName: resp.FirstName}, &RemoteError{Op: "queueNumber", Message: resp.Error}
	}
	return QueueNumber{}, fmt.Errorf("queueNumber: response carried neither NIL nor error")
}

func (c *HTTPClient) get(ctx context.Context, op, rawQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+rawQuery, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	return c.do(op, req, out)
}

func (c *HTTPClient) post(ctx context.Context, op string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: encode payload: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *HTTPClient) do(op string, req *http.Request, out any) error {
	ctx, span := c.tracer.Start(req.Context(), "directory."+op)
	defer span.End()
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(op, time.Since(start), true)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "transport failure")
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveRequest(op, time.Since(start), true)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "read failure")
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	c.metrics.ObserveRequest(op, time.Since(start), false)

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "unexpected status")
		return err
	}

	if c.logger != nil {
		c.logger.Debug("directory response", "operation", op, "body", string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "malformed body")
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
