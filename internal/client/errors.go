package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ServerError is returned when the API answers with a non-2xx status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("birdwatch server error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("birdwatch server error: HTTP %d: %s", e.StatusCode, e.Message)
}

// TransportError wraps a failure to reach the server or read its response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the server answered 2xx with a body that could not be
// decoded.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusNotFound
}
