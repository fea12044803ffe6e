package geosql

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is the fixed fallback when a failure carries no usable
// message.
const UnknownErrorMessage = "An unknown error occurred"

// APIError is a non-2xx response from the query service carrying a
// structured message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("geosql: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("geosql: unexpected status %d", e.Status)
}

// ErrorMessage extracts the user-facing message from any failure, applying
// one policy uniformly: a service error's structured message wins, then any
// error's own message, then the fixed unknown-error literal.
func ErrorMessage(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
