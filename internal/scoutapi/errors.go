package scoutapi

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusTimeout is reported when the client's own timer aborts a call.
const StatusTimeout = http.StatusRequestTimeout

const (
	MessageTimeout       = "Request timed out"
	MessageRequestFailed = "Request failed"
	MessageUnknown       = "Unknown error"
)

// ErrTimeout matches every APIError produced by the client timer.
var ErrTimeout = errors.New("scout api: request timed out")

// APIError is the uniform failure of every client call. Status is the HTTP
// status the backend returned, 408 for a client timeout, or 0 when the
// request never produced a response.
type APIError struct {
	Status   int
	Message  string
	Endpoint string
	Cause    error

	// set only when the client's own deadline fired
	timedOut bool
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scout api %s: %d %s: %v", e.Endpoint, e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("scout api %s: %d %s", e.Endpoint, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrTimeout) match timer aborts. A 408 sent by the
// backend itself does not match.
func (e *APIError) Is(target error) bool {
	return target == ErrTimeout && e.timedOut
}

// WithCause attaches the underlying error.
func (e *APIError) WithCause(cause error) *APIError {
	e.Cause = cause
	return e
}

func newAPIError(endpoint string, status int, message string) *APIError {
	return &APIError{Status: status, Message: message, Endpoint: endpoint}
}

func newTimeoutError(endpoint string, cause error) *APIError {
	e := newAPIError(endpoint, StatusTimeout, MessageTimeout).WithCause(cause)
	e.timedOut = true
	return e
}

// IsTransport reports whether err is a failure that produced no response
// (DNS, refused connection, reset) rather than a backend-reported error.
func IsTransport(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0
	}
	return false
}

// StatusOf returns the status carried by an APIError, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the user-facing message of err, falling back to fallback
// for errors that did not come from the client.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
