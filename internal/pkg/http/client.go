// Package http provides the JSON client used for all authority calls.
// Transport and parse failures are classified as network errors so
// callers can drive the retry UI path; an HTTP error status is an
// authority answer, not a network failure, and is surfaced as a
// StatusError for the gateway to interpret.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
)

// Client is a generic HTTP client for communicating with the authority
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is a non-2xx authority response with its raw body
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("authority returned status %d", e.StatusCode)
}

// GetJSON performs a GET request and decodes the JSON response into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return apperrors.Network(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// PostJSON performs a POST request with a JSON body and decodes the
// JSON response into out
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Network(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, reader)
	if err != nil {
		return apperrors.Network(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// PostQuery performs a POST request carrying its parameters in the
// query string, the encoding the authority's OTP endpoints expect
func (c *Client) PostQuery(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return apperrors.Network(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+path, nil)
	if err != nil {
		return apperrors.Network(err)
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return apperrors.Network(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Network(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return apperrors.Wrap(apperrors.KindNetwork, "failed to decode authority response", err)
		}
	}

	return nil
}
