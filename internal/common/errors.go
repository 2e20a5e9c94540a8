package common

import "errors"

var (
	// ErrNoSession is returned by helpers that need a session token when none is held.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidBaseURL is returned when the configured API base URL cannot be used.
	ErrInvalidBaseURL = errors.New("invalid base url")

	// ErrNoFiles is returned when a multi-file upload is requested with nothing to send.
	ErrNoFiles = errors.New("no files to upload")
)
