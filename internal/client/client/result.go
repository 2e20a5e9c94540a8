package client

import "net/http"

// Result is the outcome of one API call: Data on success, Error otherwise.
// StatusCode is 0 when no HTTP response was received.
type Result[T any] struct {
	Data       T
	Error      string
	StatusCode int
}

// OK reports whether r is the success variant.
func (r Result[T]) OK() bool {
	return r.Error == ""
}

// Err returns nil on success and an *APIError otherwise.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &APIError{StatusCode: r.StatusCode, Message: r.Error}
}

func success[T any](code int, data T) Result[T] {
	return Result[T]{Data: data, StatusCode: code}
}

func failure[T any](code int, msg string) Result[T] {
	return Result[T]{Error: msg, StatusCode: code}
}

// APIError is the error form of a failed Result.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is maps status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.StatusCode == 0
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	default:
		return false
	}
}
