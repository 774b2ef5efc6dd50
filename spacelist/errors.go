package spacelist

import (
	"errors"
	"fmt"
)

// Common errors returned by the client. Validation errors are returned
// synchronously, before any request is issued.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid spacelist configuration")

	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page number must be 1 or greater")

	// ErrInvalidID indicates an empty bot or user ID.
	ErrInvalidID = errors.New("id must not be empty")

	// ErrInvalidCount indicates a negative server or shard count.
	ErrInvalidCount = errors.New("count must not be negative")
)

// APIError represents a non-2xx response from the list API.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("spacelist API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates the API throttled the call.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
