package cinder

import (
	"os"
	"strings"
)

// Environment variables read by NewClientFromEnv.
const (
	EnvBaseURL = "CINDER_API_BASE_URL"
	EnvToken   = "CINDER_API_TOKEN"
)

// NewClientFromEnv builds a client from CINDER_API_BASE_URL and
// CINDER_API_TOKEN. A missing or empty variable fails immediately with a
// ConfigError; no network call is attempted. Options are applied on top of
// the environment values, so WithBaseURL etc. still win.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		return nil, ConfigError{Reason: EnvToken + " must be set"}
	}
	baseURL := strings.TrimSpace(os.Getenv(EnvBaseURL))
	if baseURL == "" {
		return nil, ConfigError{Reason: EnvBaseURL + " must be set"}
	}
	return NewClientWithToken(token, append([]Option{WithBaseURL(baseURL)}, opts...)...)
}
