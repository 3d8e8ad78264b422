package api

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnauthorized marks a 401 from any endpoint. By the time a caller sees
// it, the unauthorized hook has already fired and the session is gone.
var ErrUnauthorized = errors.New("unauthorized")

// defaultErrorMessage is used when the server does not provide one.
const defaultErrorMessage = "request failed"

// RateLimitError is a 429: the server asks the caller to slow down.
// The gateway never retries on its own; the caller decides.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: %s (retry after %s)", e.Message, e.RetryAfter)
}

// APIError is any other non-2xx response, carrying the server-provided
// message or a default.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
