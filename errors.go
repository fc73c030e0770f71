package cinder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError captures structured error metadata from a non-2xx response. It is
// embedded by the status-specific error types; callers usually match on those
// with errors.As rather than on APIError itself.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
	Fields    []FieldError
	// Body is the raw response body, kept for callers that need the
	// server's exact payload.
	Body []byte
}

// FieldError represents a validation failure for a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("cinder: %s: %s (%d)", e.Code, msg, e.Status)
	}
	return fmt.Sprintf("cinder: %s (%d)", msg, e.Status)
}

// AuthError reports a 401 or 403 response: the token is missing, expired, or
// lacks the required permission.
type AuthError struct{ APIError }

// NotFoundError reports a 404 response for the requested resource.
type NotFoundError struct{ APIError }

// RequestError reports any other 4xx response, carrying decoded validation
// detail when the server provided it.
type RequestError struct{ APIError }

// ServerError reports a 5xx response.
type ServerError struct{ APIError }

// TransportError reports a network-level failure (DNS, connection refused,
// timeout) that never produced an HTTP status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("cinder: transport: %v", e.Err)
	}
	return fmt.Sprintf("cinder: transport: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigError reports invalid or missing client configuration, detected at
// construction time.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "cinder: " + e.Reason }

// ValidationError reports a response body that does not conform to the
// expected schema component.
type ValidationError struct {
	// Schema is the OpenAPI component the body was checked against.
	Schema string
	// Causes lists the individual schema violations.
	Causes []string
	// Err is set when the body could not be decoded at all.
	Err error
}

func (e *ValidationError) Error() string {
	if len(e.Causes) > 0 {
		return fmt.Sprintf("cinder: response does not match %s: %s", e.Schema, strings.Join(e.Causes, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("cinder: invalid response body: %v", e.Err)
	}
	return fmt.Sprintf("cinder: response does not match %s", e.Schema)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// decodeAPIError reads a non-2xx response and maps it onto the typed error
// set. The server emits Django Ninja style bodies: either
// {"detail": "message"} or {"detail": [{"loc": [...], "msg": "..."}]}.
func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	apiErr := APIError{
		Status:    resp.StatusCode,
		RequestID: resp.Header.Get("X-Cinder-Request-Id"),
		Body:      data,
	}
	if len(data) > 0 {
		decodeErrorBody(data, &apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{apiErr}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{apiErr}
	case resp.StatusCode < 500:
		return &RequestError{apiErr}
	default:
		return &ServerError{apiErr}
	}
}

func decodeErrorBody(data []byte, apiErr *APIError) {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
		Code   string          `json:"code"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		apiErr.Message = strings.TrimSpace(string(data))
		return
	}
	apiErr.Code = payload.Code
	if payload.Error != "" {
		apiErr.Message = payload.Error
	}
	if len(payload.Detail) == 0 {
		return
	}
	var msg string
	if json.Unmarshal(payload.Detail, &msg) == nil {
		apiErr.Message = msg
		return
	}
	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if json.Unmarshal(payload.Detail, &items) != nil {
		return
	}
	for _, item := range items {
		field := make([]string, 0, len(item.Loc))
		for _, loc := range item.Loc {
			field = append(field, fmt.Sprint(loc))
		}
		apiErr.Fields = append(apiErr.Fields, FieldError{
			Field:   strings.Join(field, "."),
			Message: item.Msg,
		})
	}
	if apiErr.Message == "" && len(apiErr.Fields) > 0 {
		apiErr.Message = "validation failed"
	}
}
