package async

import "errors"

// ErrAwaitTimeout is returned by AwaitWithTimeout when the timeout elapses
// before the underlying computation completes.
var ErrAwaitTimeout = errors.New("async: timed out waiting for future completion")
