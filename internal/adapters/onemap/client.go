// Package onemap adapts the OneMap Singapore public APIs (address search,
// reverse geocoding, routing, token issuance) to the service ports.
//
// Every call is single-attempt: the pipeline's recovery strategy is
// degradation (estimate legs, coordinate-only locations), not retry.
package onemap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/ports"
)

const defaultBaseURL = "https://www.onemap.gov.sg"

// Client is the shared HTTP plumbing for all OneMap endpoints. Safe for
// concurrent use.
type Client struct {
	httpc   *http.Client
	baseURL string
	tokens  ports.TokenProvider
}

// NewClient builds a client for the given base URL ("" selects production).
// The token provider is optional; endpoints that accept a token simply omit
// the header without one.
func NewClient(baseURL string, tokens ports.TokenProvider) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpc:   &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(ctx context.Context, method, url, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// classify maps transport and HTTP failures onto the domain error taxonomy.
func classify(err error) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%v: %w", err, domain.ErrAuth)
		}
		return fmt.Errorf("%v: %w", err, domain.ErrNetwork)
	}
	return fmt.Errorf("%v: %w", err, domain.ErrNetwork)
}
