// Package api implements the client for the Redemly marketplace REST API.
// List endpoints return {success, data: {<resource>: [...]}} envelopes;
// mutations accept JSON bodies and return {success, message?, <entity>?}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/service"
)

const defaultTimeout = 30 * time.Second

var _ service.MarketplaceAPI = (*Client)(nil)

// Client talks to the Redemly marketplace API. The base URL is injected
// once from config; no per-call host overrides.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: api base url is required", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("%w: api base url %q is not a valid URL", common.ErrInvalidConfig, baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope is the common response wrapper used by every endpoint.
type envelope struct {
	Data    map[string]json.RawMessage `json:"data"`
	Message string                     `json:"message"`
	Success bool                       `json:"success"`
}

func (c *Client) request(ctx context.Context, method, path string, payload any) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("redemly api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAPIConnection, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request rejected"
		}
		return nil, fmt.Errorf("redemly api error: %s", msg)
	}
	return &env, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return common.ErrAPIUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return common.ErrAPIRateLimit
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("redemly api error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// list fetches and decodes the named array from a list endpoint.
func list[T any](ctx context.Context, c *Client, path, key string) ([]T, error) {
	env, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	raw, ok := env.Data[key]
	if !ok {
		return nil, fmt.Errorf("%w: response missing %q", common.ErrInvalidResource, key)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	slog.Debug("redemly api list", "resource", key, "records", len(records))
	return records, nil
}

// mutate issues a write and decodes the returned entity, if any.
func mutate[T any](ctx context.Context, c *Client, method, path, key string, payload any) (*T, error) {
	env, err := c.request(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	raw, ok := env.Data[key]
	if !ok || len(raw) == 0 {
		// Mutation acknowledged with a bare success flag.
		return nil, nil
	}

	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &entity, nil
}
