package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the backend answers without content.
	ErrEmptyResponse = errors.New("ai: empty response")
	// ErrRefused is returned when the model declines to answer.
	ErrRefused = errors.New("ai: model refused")
	// ErrUnknownRequest is returned by the mock for request names it cannot answer.
	ErrUnknownRequest = errors.New("ai: unknown request")
)

// HTTPError is a non-2xx answer from an HTTP backend.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("ai: backend status %d: %s", e.StatusCode, e.Body)
}
