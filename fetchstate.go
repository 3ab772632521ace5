package fetchstate

import (
	"context"

	"github.com/dmitrymomot/fetchstate/pkg/transport"
	"github.com/dmitrymomot/fetchstate/pkg/watch"
)

// New creates a watcher over tr whose results are produced by the supplied
// unwrap transform. This is the general form; use NewJSON when the response
// body is JSON.
func New[T any](tr transport.Transport, unwrap watch.Unwrap[T], opts ...watch.Option) (*watch.Watcher[T], error) {
	return watch.New(tr, unwrap, opts...)
}

// NewJSON creates a watcher that decodes response bodies as JSON into T.
// It is New with JSONUnwrap as the transform; no additional behavior.
func NewJSON[T any](tr transport.Transport, opts ...watch.Option) (*watch.Watcher[T], error) {
	return watch.New(tr, JSONUnwrap[T](), opts...)
}

// MustNewJSON is like NewJSON but panics on invalid arguments.
func MustNewJSON[T any](tr transport.Transport, opts ...watch.Option) *watch.Watcher[T] {
	return watch.MustNew(tr, JSONUnwrap[T](), opts...)
}

// JSONUnwrap returns the default unwrap transform: decode the raw response
// body as JSON into a value of type T.
func JSONUnwrap[T any]() watch.Unwrap[T] {
	return func(_ context.Context, resp *transport.Response) (T, error) {
		var v T
		if err := resp.JSON(&v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}
