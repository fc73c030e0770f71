// Package headers defines HTTP header constants used by the Cinder SDK.
package headers

const (
	// RequestID is the header for request correlation. The client generates a
	// value when the caller does not supply one.
	RequestID = "X-Cinder-Request-Id"
)
