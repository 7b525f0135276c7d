// Package errors defines stable error codes for the request-serving
// failure modes of staticd.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvalidPath indicates a malformed or traversal-attempting request path
	InvalidPath ErrorCode = "INVALID_PATH"
	// NotFound indicates the target file (and the 404 fallback page) could not be read
	NotFound ErrorCode = "NOT_FOUND"
	// StreamFailure indicates an I/O error after response construction began
	StreamFailure ErrorCode = "STREAM_FAILURE"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// ServeError represents a request-serving error with a stable code
type ServeError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error     // Underlying error (not exported to JSON)
}

// New creates a new ServeError
func New(code ErrorCode, message string, cause error) *ServeError {
	return &ServeError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *ServeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ServeError) Unwrap() error {
	return e.cause
}
