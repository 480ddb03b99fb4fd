// Package api provides raw HTTP clients for the auth, project and task
// services. Requests carry the caller's session token as the jwt cookie.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single call when NewClient is given no timeout.
const DefaultTimeout = 30 * time.Second

const (
	tokenCookieName = "jwt"
	maxBodyBytes    = 4 << 20
)

// APIError is returned for any non-2xx response. Message holds the service's
// own message when the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// MessageOf returns the service message carried by err, or "" when err is not
// an *APIError or the service sent none.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client is the shared transport for one service base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the service root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one JSON request and decodes a 2xx body into out. An empty 2xx
// body leaves out untouched. The response headers are returned so callers can
// read cookies.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) (http.Header, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.Header, fmt.Errorf("api: read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Header, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.Header, fmt.Errorf("api: decode %s %s: %w", method, path, err)
		}
	}
	return resp.Header, nil
}

// errorMessage pulls "message" (a string or a list of strings) or "error"
// out of an error body.
func errorMessage(data []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if len(body.Message) > 0 {
		var s string
		if err := json.Unmarshal(body.Message, &s); err == nil {
			return s
		}
		var list []string
		if err := json.Unmarshal(body.Message, &list); err == nil {
			return strings.Join(list, "; ")
		}
	}
	return body.Error
}

func idPath(prefix string, id int) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
