package client

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned by the pre-flight checks that reject a
// request before it reaches the server.
var ErrMissingField = errors.New("required field is empty")

// APIError carries the status code and server-provided message of a
// non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// DecodeError wraps a response body that did not match the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
