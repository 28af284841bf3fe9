package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

const (
	defaultTimeout = 15 * time.Second

	// statusSessionExpired is the conventional CSRF-mismatch status; the
	// backend emits it when a token went stale mid-session.
	statusSessionExpired = 419

	maxErrorBody = 8 << 10
)

// Client is the shared HTTP transport for every remote resource. It owns the
// session cookie jar, stamps the JSON and CSRF headers on each request, and
// translates auth failures into session-handler callbacks.
type Client struct {
	base    *url.URL
	http    *http.Client
	logger  interfaces.Logger
	csrf    interfaces.CSRFTokenSource
	session interfaces.SessionHandler
}

// Option configures the client at construction time.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client. The supplied client keeps
// its own jar and timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger injects the transport logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCSRFTokenSource attaches a token source consulted on every mutating request.
func WithCSRFTokenSource(source interfaces.CSRFTokenSource) Option {
	return func(c *Client) {
		c.csrf = source
	}
}

// WithSessionHandler registers the handler invoked on 401 and 419 responses.
func WithSessionHandler(handler interfaces.SessionHandler) Option {
	return func(c *Client) {
		c.session = handler
	}
}

// WithTimeout overrides the request timeout on the default http.Client. It has
// no effect when WithHTTPClient is also supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// NewClient builds a client rooted at baseURL, typically "/api" resolved
// against the deployment host.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrBaseURLRequired
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("remote: parse base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("remote: cookie jar: %w", err)
	}

	c := &Client{
		base:   base,
		http:   &http.Client{Timeout: defaultTimeout, Jar: jar},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do executes one request and decodes a 2xx JSON body into out when out is
// non-nil. Non-2xx responses become RequestError; failures before a response
// become TransportError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	endpoint := c.base.JoinPath(path).String()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("remote: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.csrf != nil && method != http.MethodGet && method != http.MethodHead {
		if token := c.csrf.Token(ctx); token != "" {
			req.Header.Set("X-CSRF-Token", token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("remote.transport_failed", "method", method, "path", path, "error", err)
		return &TransportError{Method: method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.handleAuthStatus(ctx, resp.StatusCode)
		c.logger.Debug("remote.request_failed", "method", method, "path", path, "status", resp.StatusCode)
		return &RequestError{Method: method, Path: path, Status: resp.StatusCode, Body: payload}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decode %s %s: %w", method, path, err)
	}
	return nil
}

// handleAuthStatus fires the session callbacks exactly once per response. The
// callbacks are global side effects (redirect to login, flush auth state) and
// run regardless of which resource hit the failure.
func (c *Client) handleAuthStatus(ctx context.Context, status int) {
	if c.session == nil {
		return
	}
	switch status {
	case http.StatusUnauthorized:
		c.session.Unauthorized(ctx)
	case statusSessionExpired:
		c.session.SessionExpired(ctx)
	}
}
