package cinder

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
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cinderhq/cinder-go/headers"
)

const defaultUserAgent = "cinder-go/0.1"
const defaultTimeout = 30 * time.Second

// Config wires authentication, base URL, and telemetry for the API client.
type Config struct {
	// BaseURL is the root of the Cinder deployment, e.g. "https://api.example.com".
	BaseURL string
	// Token is the bearer credential. A leading "Bearer " prefix is tolerated
	// and stripped.
	Token string
	// HTTPClient overrides the owned transport. The caller keeps
	// responsibility for its lifetime beyond idle-connection cleanup.
	HTTPClient *http.Client
	// Timeout applies to the owned transport only. Zero means 30s.
	Timeout time.Duration
	// Headers are defaults merged into every request. Per-request values win.
	Headers   map[string]string
	Telemetry TelemetryHooks
	UserAgent string
}

// Client talks to the Cinder HTTP API. It is safe for concurrent use; the
// token and base URL are fixed for its lifetime.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	headers    map[string]string
	telemetry  TelemetryHooks
	userAgent  string
	closeOnce  sync.Once

	// Grouped service clients.
	Reports   *ReportsClient
	Decisions *DecisionsClient
	Appeals   *AppealsClient
	Graph     *GraphClient
	Events    *EventsClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	normalized, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	token := strings.TrimSpace(cfg.Token)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return nil, ConfigError{Reason: "api token required"}
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		token:      token,
		httpClient: httpClient,
		headers:    cfg.Headers,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
	}
	client.Reports = &ReportsClient{client: client}
	client.Decisions = &DecisionsClient{client: client}
	client.Appeals = &AppealsClient{client: client}
	client.Graph = &GraphClient{client: client}
	client.Events = &EventsClient{client: client}
	return client, nil
}

// Close releases the connection pool exactly once. Further calls are no-ops.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// BaseURL returns the normalized base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ConfigError{Reason: "base URL required"}
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", ConfigError{Reason: fmt.Sprintf("invalid base URL: %v", err)}
	}
	if u.Scheme == "" {
		return "", ConfigError{Reason: "base URL missing scheme (http/https)"}
	}
	if u.Host == "" {
		return "", ConfigError{Reason: "base URL missing host"}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// NewRequest builds an authenticated JSON request for path relative to the
// base URL. The payload, when non-nil, is JSON-encoded as the body. Callers
// may add or override headers before passing the request to Do.
func (c *Client) NewRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request) {
	for key, value := range c.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	// Exactly one Authorization header, always the configured token.
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// Do sends a prepared request and maps failures to the typed error set. On
// success the caller owns the response body. This is the escape hatch for
// endpoints not covered by the named methods.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(req.Context(), req)
	}
	c.telemetry.log(req.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(req.Context(), req, resp, err, time.Since(start))
	}
	c.telemetry.metric(req.Context(), "cinder_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, &TransportError{URL: uerr.URL, Err: uerr.Err}
		}
		return nil, &TransportError{URL: req.URL.String(), Err: err}
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

// sendJSON performs one round trip and decodes the response body into out,
// validating it against the named OpenAPI component schema first. An empty
// schema name skips validation.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, schemaName string, out any) error {
	req, err := c.NewRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeBody(resp.Body, schemaName, out)
}

func decodeBody(body io.Reader, schemaName string, out any) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if schemaName != "" {
		if err := validateComponent(schemaName, data); err != nil {
			return err
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ValidationError{Schema: schemaName, Err: err}
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func joinQuery(path string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
