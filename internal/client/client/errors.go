package client

import "errors"

var (
	// ErrUnavailable matches failures where no HTTP response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)
