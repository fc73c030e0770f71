package cinder

import (
	"net/http"
	"time"
)

// Option customizes a Config during option-style construction.
type Option func(*Config)

// NewClientWithToken builds a client from a bearer token plus options. It is
// equivalent to NewClient with a hand-filled Config.
func NewClientWithToken(token string, opts ...Option) (*Client, error) {
	cfg := Config{Token: token}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// WithBaseURL sets the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(cfg *Config) { cfg.BaseURL = baseURL }
}

// WithHTTPClient supplies an external HTTP client. The SDK will not close it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *Config) { cfg.HTTPClient = httpClient }
}

// WithTimeout sets the request timeout on the owned HTTP client. Ignored when
// WithHTTPClient is also used.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) { cfg.Timeout = timeout }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *Config) { cfg.UserAgent = ua }
}

// WithTelemetry installs observability hooks.
func WithTelemetry(hooks TelemetryHooks) Option {
	return func(cfg *Config) { cfg.Telemetry = hooks }
}

// WithHeader adds a default header applied to every request unless the
// request already carries the key.
func WithHeader(key, value string) Option {
	return func(cfg *Config) {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers[key] = value
	}
}
