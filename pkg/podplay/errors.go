package podplay

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	ErrTransport = errors.New("transport failure")
	ErrNotFound  = errors.New("not found")
	ErrUpstream  = errors.New("upstream error")
	ErrDecode    = errors.New("cannot decode response")
)

// TransportError represents a network-level failure: connection refused,
// DNS failure, timeout, cancelled context.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// StatusError represents a non-2xx response from the API.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d for %s", e.StatusCode, e.URL)
}

func (e *StatusError) Is(target error) bool {
	if target == ErrNotFound {
		return e.StatusCode == http.StatusNotFound
	}
	return target == ErrUpstream
}

// DecodeError represents a response body that is not valid JSON or does not
// have the shape expected for the requested entity.
type DecodeError struct {
	URL    string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding response from %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("decoding response from %s: %s", e.URL, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
