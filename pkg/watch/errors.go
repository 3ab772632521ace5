package watch

import "errors"

var (
	// ErrNilTransport is returned by New when no transport is supplied.
	ErrNilTransport = errors.New("watch: transport cannot be nil")

	// ErrNilUnwrap is returned by New when no unwrap transform is supplied.
	ErrNilUnwrap = errors.New("watch: unwrap transform cannot be nil")
)
