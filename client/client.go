// Package client is a Go API client for the Para-Praxis backend. It keeps the
// access token in a process-local cache, carries the refresh token only in
// the HTTP cookie jar, and transparently refreshes once on an expired token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// APIError is a structured error response from the server.
type APIError struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// envelope mirrors the server's JSON response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *APIError       `json:"error"`
}

// Client is a Para-Praxis API client.
type Client struct {
	baseURL string
	http    *http.Client
	cache   tokenCache
	logger  *slog.Logger

	// Concurrent 401s coalesce into a single refresh call.
	refreshGroup singleflight.Group

	// Set by Logout; the next Hydrate call is skipped so a stale cookie
	// cannot resurrect the session the user just ended.
	suppressHydrate atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is added
// when the given client has none, since the refresh flow depends on it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	return c, nil
}

// Token returns the currently cached access token, empty when logged out.
func (c *Client) Token() string {
	return c.cache.Get()
}

// do performs an authenticated JSON request. On a 401 it refreshes the access
// token once and replays the request; a second 401 propagates.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	tokenUsed := c.cache.Get()

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && !isAuthPath(path) {
		drain(resp)

		// Skip the refresh when another caller already rotated the token
		// while this request was in flight; just replay with the new one.
		if c.cache.Get() == tokenUsed {
			if err := c.refreshToken(ctx); err != nil {
				c.cache.Clear()
				return err
			}
		}

		resp, err = c.send(ctx, method, path, body)
		if err != nil {
			return err
		}
	}

	return decodeResponse(resp, out)
}

// send issues a single request attempt with the cached bearer token attached.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.cache.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// refreshToken exchanges the refresh cookie for a new token pair, coalescing
// concurrent callers into one round trip.
func (c *Client) refreshToken(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		resp, err := c.send(ctx, http.MethodPost, "/api/auth/refresh", nil)
		if err != nil {
			return nil, err
		}

		var pair TokenPair
		if err := decodeResponse(resp, &pair); err != nil {
			return nil, err
		}

		c.cache.Set(pair.AccessToken)
		c.logger.Debug("access token refreshed")
		return nil, nil
	})
	return err
}

// isAuthPath reports whether a 401 from this path must not trigger a
// refresh-and-retry, to keep the interceptor from looping.
func isAuthPath(path string) bool {
	return path == "/api/auth/refresh" || path == "/api/auth/logout"
}

// decodeResponse unwraps the envelope into out, converting server errors to
// *APIError.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if env.Error != nil {
		env.Error.Status = resp.StatusCode
		return env.Error
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
