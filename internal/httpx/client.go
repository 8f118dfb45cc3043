// Package httpx executes marketplace API requests on behalf of the store
// adapters: it attaches common headers, records metrics and logs, and
// hands the buffered response back for vendor-specific handling.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/pkg/logger"
)

const (
	// DefaultTimeout bounds a single marketplace request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies outbound requests.
	DefaultUserAgent = "shopstore/1.0"

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-Id"
)

// Client sends requests for a single vendor.
type Client struct {
	vendor    string
	client    *http.Client
	logger    *slog.Logger
	userAgent string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for the named vendor. Every log line it writes
// carries the vendor attribute.
func New(vendor string, opts ...Option) *Client {
	c := &Client{
		vendor:    vendor,
		client:    &http.Client{Timeout: DefaultTimeout},
		logger:    slog.New(slog.DiscardHandler),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logger.ForVendor(c.logger, vendor)
	return c
}

// Request describes one outbound call.
type Request struct {
	// Operation names the call in logs and metrics, e.g. "login".
	Operation string
	Method    string
	URL       string
	Header    http.Header
	Body      []byte
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	StatusText string
	Header     http.Header
	Body       []byte
	RequestID  string
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

// Do executes req. Only transport failures are returned as errors; non-2xx
// responses come back as a Response for the caller to interpret.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader = http.NoBody
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	requestID := uuid.NewString()
	httpReq.Header.Set(RequestIDHeader, requestID)

	log := c.logger.With(
		"op", req.Operation,
		"request_id", requestID,
	)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	elapsed := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(c.vendor, req.Operation).Observe(elapsed.Seconds())
	if err != nil {
		metrics.APIErrorsTotal.WithLabelValues(c.vendor, req.Operation).Inc()
		log.Warn("marketplace request failed",
			"method", req.Method,
			"url", redactURL(req.URL),
			"duration", elapsed,
			"err", err,
		)
		return nil, fmt.Errorf("executing %s request: %w", req.Operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIErrorsTotal.WithLabelValues(c.vendor, req.Operation).Inc()
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	metrics.APIRequestsTotal.WithLabelValues(
		c.vendor, req.Operation, strconv.Itoa(resp.StatusCode),
	).Inc()

	log.Debug("marketplace request",
		"method", req.Method,
		"url", redactURL(req.URL),
		"status", resp.StatusCode,
		"duration", elapsed,
	)

	return &Response{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Header:     resp.Header,
		Body:       data,
		RequestID:  requestID,
	}, nil
}

// JSONBody marshals v for use as a request body.
func JSONBody(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return b, nil
}

// FormBody encodes form values as application/x-www-form-urlencoded.
func FormBody(form url.Values) []byte {
	return []byte(form.Encode())
}

// statusText returns the reason phrase the server sent, falling back to
// the standard text for the code.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// redactURL drops the query string, which can carry seller identifiers
// and search terms.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	return u.String()
}
