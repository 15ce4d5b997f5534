// Package backend is the typed HTTP client for the storefront REST service.
// The backend owns every business rule (pricing, ownership, balances, the
// transaction ledger); this package only shapes requests and unwraps
// responses.
package backend

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

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:3001"

// ErrUnauthorized matches any backend response with status 401. The caller
// side treats it as "session no longer valid" and tears the session down.
var ErrUnauthorized = errors.New("backend: unauthorized")

// APIError is a non-2xx backend response carrying the most specific message
// the server provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// Is reports 401 responses as ErrUnauthorized so callers can use errors.Is.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client. An empty baseURL falls back to
// DefaultBaseURL. The timeout applies to the whole request; there are no
// retries, a failed call is terminal and up to the user to repeat.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one request against the backend. A non-empty token is attached
// as a bearer Authorization header. The raw response body is returned for
// 2xx responses; anything else becomes an *APIError.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body interface{}) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	return data, nil
}

// get performs a GET and decodes the payload into out.
func (c *Client) get(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	data, err := c.do(ctx, token, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodePayload(data, out)
}

// post performs a POST and decodes the payload into out (out may be nil).
func (c *Client) post(ctx context.Context, token, path string, body, out interface{}) error {
	data, err := c.do(ctx, token, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(data, out)
}

// decodePayload unwraps the transport envelope. The backend answers either
// bare payloads or {"data": ...} wrappers; callers always get the payload.
// Paginated listings keep their own top-level data key and are decoded as-is.
func decodePayload(data []byte, out interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

// decodeList normalizes list endpoints that answer either a bare JSON array
// or an {"data": [...]} envelope. Anything else yields an empty list.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode list response: %w", err)
		}
		return items, nil
	}

	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	if wrapped.Data == nil {
		return []T{}, nil
	}
	return wrapped.Data, nil
}

// errorMessage extracts the most specific error message from a failure body.
// Known shapes: {"message": "..."} and {"error": {"message": "..."}}.
func errorMessage(data []byte, status int) string {
	var flat struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &flat); err == nil && flat.Message != "" {
		return flat.Message
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}

	return fmt.Sprintf("request failed with status %d", status)
}
