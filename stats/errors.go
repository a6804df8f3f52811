package stats

import (
	"errors"
	"fmt"
)

// InputError rejects a malformed caller-supplied argument before any network
// call is made.
type InputError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// AsInputError attempts to unwrap an error into an InputError.
func AsInputError(err error) (*InputError, bool) {
	var iErr *InputError
	if errors.As(err, &iErr) {
		return iErr, true
	}
	return nil, false
}

// NotFoundError reports a well-formed singular-record request that matched
// zero rows.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nErr *NotFoundError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}

// NetworkError surfaces a failed upstream fetch: non-success status, timeout,
// oversized body, or malformed JSON. It wraps the transport-level cause
// unchanged; no retry happens below it.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var nErr *NetworkError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}
