// Package api is the REST client for the reconciliation backend. Backend
// JSON is treated as untyped input: each endpoint has one DTO and one
// mapping function into the domain types, and nothing outside this package
// sees a raw payload.
package api

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
)

const (
	csrfCookie = "csrftoken"
	csrfHeader = "X-CSRFToken"
)

// Client talks to one reconciliation backend.
type Client struct {
	baseURL string
	http    *http.Client
	csrf    string
}

// Option configures a Client.
type Option func(*Client)

// WithCSRFToken sets an explicit CSRF token, used when no csrftoken cookie
// has been set by the backend.
func WithCSRFToken(token string) Option {
	return func(c *Client) { c.csrf = token }
}

// WithTimeout sets the per-request timeout. There is no retry; a stalled
// request fails when the timeout elapses.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second, Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is a non-2xx backend response. Detail carries the backend's
// own detail/error/message field when one was present, so business-rule
// rejections surface verbatim.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string { return e.Detail }

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	se, ok := err.(*StatusError)
	return ok && se.Code == code
}

func (c *Client) get(ctx context.Context, path string, query url.Values, into any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, into)
}

func (c *Client) post(ctx context.Context, path string, body any, into any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(csrfHeader, c.csrfToken())
	return c.do(req, into)
}

func (c *Client) do(req *http.Request, into any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if into == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}

// csrfToken prefers the backend's csrftoken cookie over the configured
// token, matching the cookie-then-form-field sourcing of the web client.
func (c *Client) csrfToken() string {
	if u, err := url.Parse(c.baseURL); err == nil && c.http.Jar != nil {
		for _, ck := range c.http.Jar.Cookies(u) {
			if ck.Name == csrfCookie {
				return ck.Value
			}
		}
	}
	return c.csrf
}

// decodeError extracts a human-readable message from a non-2xx response,
// looking for detail, error, then message; the raw status code is the
// fallback when the body is not JSON.
func decodeError(resp *http.Response) error {
	se := &StatusError{Code: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Detail  string `json:"detail"`
		Err     string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			se.Detail = payload.Detail
		case payload.Err != "":
			se.Detail = payload.Err
		case payload.Message != "":
			se.Detail = payload.Message
		}
	}
	if se.Detail == "" {
		se.Detail = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return se
}
