package transport

import (
	"errors"
	"fmt"
)

// Validation errors returned before any network activity takes place.
var (
	ErrEmptyTarget       = errors.New("transport: empty target URL")
	ErrInvalidTarget     = errors.New("transport: invalid target URL")
	ErrUnsupportedMethod = errors.New("transport: unsupported method")
	ErrBodyNotAllowed    = errors.New("transport: request body not allowed for method")
)

// StatusError reports a response whose status code falls outside the 2xx
// range. The drained response stays attached so callers can inspect the body
// the server sent along with the failure.
type StatusError struct {
	Code     int
	Status   string
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: request failed with status %s", e.Status)
}

// IsStatusError reports whether err is a *StatusError, returning it when so.
func IsStatusError(err error) (*StatusError, bool) {
	var e *StatusError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
