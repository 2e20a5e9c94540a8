// Package common contains shared constants and sentinel errors used across
// the API client packages.
package common

const (
	// AuthTokenKey is the metadata key under which the session token is persisted.
	AuthTokenKey = "authToken"

	// AuthTokenSavedAtKey records when AuthTokenKey was last written (RFC3339).
	AuthTokenSavedAtKey = "authTokenSavedAt"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultAPIBaseURL is used when no base URL is configured.
	DefaultAPIBaseURL = "http://localhost:3001"
)
