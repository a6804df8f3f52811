// Package transport fetches raw JSON bodies from the upstream stats service.
// It offers a primary plain-HTTP tier with browser-like headers and a
// secondary headless-browser tier for endpoints that actively block the
// primary, composed sequentially (never raced).
package transport

import (
	"context"
	"errors"
	"fmt"
)

// Fetcher retrieves the raw JSON body behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ErrBodyTooLarge flags a response body above the configured byte ceiling,
// rejected before parsing.
var ErrBodyTooLarge = errors.New("response body exceeds size ceiling")

// ErrMalformedBody flags a body that is not well-formed JSON.
var ErrMalformedBody = errors.New("response body is not valid JSON")

// StatusError reports a non-success upstream HTTP status.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Status, e.URL)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
