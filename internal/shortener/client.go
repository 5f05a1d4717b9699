// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

const (
	// DefaultBaseURL is where the shortening API is served.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds a single request, including reading the body.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the client-side request budget per second.
	DefaultRateLimit = 5.0

	// MaxResponseSize caps how much of a response body is read.
	MaxResponseSize = 1 << 20

	shortenPath = "/api/urls"
	infoPath    = "/api/info/"
)

// ClientConfig holds configuration options for the shortener client.
type ClientConfig struct {
	// BaseURL is the API base URL (default: http://localhost:8000)
	BaseURL string

	// PublicURL prefixes short keys to form the shareable link.
	// Defaults to BaseURL when empty.
	PublicURL string

	// Timeout for each request (default: 10s)
	Timeout time.Duration

	// RateLimit is requests per second; zero or negative disables throttling.
	RateLimit float64

	// UserAgent sent with every request
	UserAgent string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		PublicURL: DefaultBaseURL,
		Timeout:   DefaultTimeout,
		RateLimit: DefaultRateLimit,
		UserAgent: "linkzip",
	}
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// URLInfo is the service's record of a shortened URL.
type URLInfo struct {
	OriginalURL string `json:"original_url"`
	ShortKey    string `json:"short_key"`
}

type shortenRequest struct {
	OriginalURL string `json:"original_url"`
}

// errorResponse mirrors the service's error body. Detail is usually a
// string but validation failures carry a list of {"msg": ...} objects.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the shortening API.
//
// The Client is safe for concurrent use. Each widget instance may share one
// Client because it holds no per-submission state.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config

	// Fill in defaults for any zero values
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.PublicURL == "" {
		cfg.PublicURL = cfg.BaseURL
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "linkzip"
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		config: &cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: limiter,
	}
}

// Clone returns a client with the same configuration and transport but its
// own request throttle, so throttling one caller never delays another.
func (c *Client) Clone() *Client {
	clone := *c
	if c.limiter != nil {
		clone.limiter = rate.NewLimiter(c.limiter.Limit(), c.limiter.Burst())
	}
	return &clone
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// ShortURL builds the shareable link for a short key.
func (c *Client) ShortURL(key string) string {
	return c.config.PublicURL + "/" + key
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Shorten asks the service for a short key for originalURL.
//
// Exactly one request is sent per call and nothing is retried. Every
// returned error is a *ClientError.
func (c *Client) Shorten(ctx context.Context, originalURL string) (*URLInfo, error) {
	if strings.TrimSpace(originalURL) == "" {
		return nil, ErrEmptyInput
	}

	body, err := json.Marshal(shortenRequest{OriginalURL: originalURL})
	if err != nil {
		return nil, unspecifiedError(0, err)
	}

	resp, data, err := c.send(ctx, http.MethodPost, shortenPath, body, c.httpClient)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, apiError(resp.StatusCode, data)
	}

	info, err := decodeInfo(resp.StatusCode, data)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Info fetches what the service knows about a short key.
func (c *Client) Info(ctx context.Context, key string) (*URLInfo, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, &ClientError{Type: ErrTypeValidation, Message: "Please enter a short key."}
	}

	resp, data, err := c.send(ctx, http.MethodGet, infoPath+url.PathEscape(key), nil, c.httpClient)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFoundError(data)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, apiError(resp.StatusCode, data)
	}
	return decodeInfo(resp.StatusCode, data)
}

// Resolve returns the redirect target for a short key without following it.
func (c *Client) Resolve(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", &ClientError{Type: ErrTypeValidation, Message: "Please enter a short key."}
	}

	noFollow := *c.httpClient
	noFollow.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, data, err := c.send(ctx, http.MethodGet, "/"+url.PathEscape(key), nil, &noFollow)
	if err != nil {
		return "", err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", notFoundError(data)
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		if loc := resp.Header.Get("Location"); loc != "" {
			return loc, nil
		}
		return "", &ClientError{Type: ErrTypeAPIUnspecified, Message: MsgNoRedirect, Status: resp.StatusCode}
	case isSuccess(resp.StatusCode):
		return "", &ClientError{Type: ErrTypeAPIUnspecified, Message: MsgNoRedirect, Status: resp.StatusCode}
	default:
		return "", apiError(resp.StatusCode, data)
	}
}

// =============================================================================
// TRANSPORT
// =============================================================================

// send performs one request and reads the (size-limited) body. A non-nil
// error always means no usable response was obtained.
func (c *Client) send(ctx context.Context, method, path string, body []byte, hc *http.Client) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, nil, transportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, transportError(err)
		}
	}

	logRequest(req)
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		log.Printf("API Error: %s %s: %v", req.Method, req.URL.Path, err)
		return nil, nil, transportError(err)
	}
	defer resp.Body.Close()
	logResponse(req, resp, time.Since(start))

	data, err := readResponse(resp)
	if err != nil {
		// A truncated or unreadable body still came with a status line.
		log.Printf("API Error: %s %s: %v", req.Method, req.URL.Path, err)
		data = nil
	}
	return resp, data, nil
}

// readResponse reads the response body with size limits.
func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// logRequest logs method and path only; bodies carry user URLs.
func logRequest(req *http.Request) {
	log.Printf("API Request: %s %s [%s]", req.Method, req.URL.Path, req.Header.Get("X-Request-ID"))
}

func logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	log.Printf("API Response: %s %s -> %d (%v)", req.Method, req.URL.Path, resp.StatusCode, duration)
}

// =============================================================================
// RESPONSE CLASSIFICATION
// =============================================================================

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func decodeInfo(status int, data []byte) (*URLInfo, error) {
	var info URLInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, unspecifiedError(status, fmt.Errorf("decode response: %w", err))
	}
	if info.ShortKey == "" {
		return nil, unspecifiedError(status, errors.New("response has no short_key"))
	}
	return &info, nil
}

// apiError classifies a non-2xx response by its detail field.
func apiError(status int, data []byte) *ClientError {
	if detail := extractDetail(data); detail != "" {
		return &ClientError{Type: ErrTypeAPI, Message: detail, Status: status}
	}
	return unspecifiedError(status, nil)
}

func notFoundError(data []byte) *ClientError {
	msg := extractDetail(data)
	if msg == "" {
		msg = MsgKeyNotFound
	}
	return &ClientError{Type: ErrTypeNotFound, Message: msg, Status: http.StatusNotFound}
}

// extractDetail returns the server-supplied message verbatim, or "" when the
// body has none or it is blank. A list-valued detail is flattened from its
// "msg" entries.
func extractDetail(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var payload errorResponse
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		if strings.TrimSpace(text) == "" {
			return ""
		}
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if strings.TrimSpace(it.Msg) != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
