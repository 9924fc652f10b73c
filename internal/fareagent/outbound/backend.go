// Package outbound is the client for the booking backend. Every call is
// a JSON POST; success has two layers, the HTTP status and an
// application-level "status" boolean in the body, and both are checked
// here so callers only ever see one error.
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgerror"
)

// Logical endpoint paths on the booking backend.
const (
	pathFlightList        = "/api/agent/flight-list"
	pathBookingRequest    = "/api/agent/flight-booking-request"
	pathPhonePeURL        = "/api/agent/generate-phonepe-url"
	pathCashfreePayment   = "/api/agent/create-cashfree-payment"
	pathAtomPayment       = "/api/agent/create-atom-payment"
	pathAirlines          = "/api/airlines"
	pathPaymentModules    = "/api/agent/payment-modules"
	pathAvailablePNRDates = "/api/agent/available-pnr-dates"
)

type Client struct {
	baseURL string
	token   string
	hc      *http.Client
	limiter *rateLimiter
}

type Option func(*Client)

// WithHTTPClient injects the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithRateLimit spaces calls to the backend by at least interval.
func WithRateLimit(interval time.Duration) Option {
	return func(c *Client) { c.limiter = newRateLimiter(interval) }
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// post sends one JSON request and decodes the body into out. A non-2xx
// response or transport error is a TransportFailure; the application
// status boolean is left for the caller because its siblings differ per
// endpoint.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait %s: %w", path, err)
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("call backend %s: %w", path, err)
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "backend call",
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("call backend %s: unexpected status %s", path, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return nil
}

// rejected converts an application-level refusal into a business error,
// keeping the server's message when it sent one. Logged separately from
// transport failures so telemetry can tell the two apart.
func rejected(ctx context.Context, path, message string) error {
	if message == "" {
		message = "request rejected by booking backend"
	}
	slog.WarnContext(ctx, "backend rejected request", "path", path, "message", message)
	return pkgerror.NewBusiness(message, pkgerror.CodeUpstreamRejected)
}
