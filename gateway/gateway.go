// Package gateway is the transport layer for the GitPulse backend API.
// It owns the cookie jar that carries the session token and centralizes
// unauthorized-response logging. It deliberately knows nothing about the
// session store: a 401 is logged here and acted on by the page-level guard,
// which keeps the transport free of a circular dependency on session logic.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Response is a completed HTTP exchange. Body is fully read and the
// underlying connection released before Response is returned.
type Response struct {
	Status int
	Body   []byte
}

// Unauthorized reports whether the server rejected the session cookie.
func (r *Response) Unauthorized() bool {
	return r.Status == http.StatusUnauthorized
}

// Client issues credentialed JSON requests against a configured base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	devLogging bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for unauthorized warnings and dev logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDevLogging enables per-request debug logging. This is an explicit
// configuration choice made at startup, never inferred from the environment,
// so production configurations stay silent deterministically.
func WithDevLogging(enabled bool) Option {
	return func(c *Client) { c.devLogging = enabled }
}

// WithHTTPClient replaces the underlying HTTP client. The replacement should
// carry a cookie jar if session continuity is required.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a Client for the given base URL. The default HTTP client has a
// fresh in-memory cookie jar and no timeout; cancellation is governed by the
// caller's context.
func New(baseURL string, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[gateway.New] base URL is required")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "[gateway.New] cookiejar.New")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured base address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a credentialed GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a credentialed POST request with a JSON body. A nil body sends
// an empty request.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a credentialed PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var payload io.Reader
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "[Client.do] marshal %s %s body", method, path)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.do] build %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.devLogging {
		c.log.Debug().Str("method", method).Str("path", path).RawJSON("body", jsonOrNull(encoded)).Msg("api request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.devLogging {
			c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("api request failed")
		}
		return nil, errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.do] read %s %s response", method, path)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn().Str("method", method).Str("path", path).Msg("unauthorized response, session may have expired")
	}

	if c.devLogging {
		c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api response")
	}

	return &Response{Status: resp.StatusCode, Body: responseBody}, nil
}

func jsonOrNull(encoded []byte) []byte {
	if len(encoded) == 0 {
		return []byte("null")
	}
	return encoded
}
