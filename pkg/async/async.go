package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
// A Future is completed exactly once and its result never changes afterwards.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

func (f *Future[U]) complete(result U, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Await blocks until the computation completes and returns its outcome.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, in which case it returns ErrAwaitTimeout. The underlying
// computation keeps running; only the wait is abandoned.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrAwaitTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Go runs fn in its own goroutine and returns a Future for its result.
// If ctx is already canceled when Go is called, the future completes
// immediately with the context error and fn never runs.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		select {
		case <-ctx.Done():
			var zero U
			f.complete(zero, ctx.Err())
			return
		default:
		}

		f.complete(fn(ctx))
	}()

	return f
}

// Then derives a future by applying fn to the result of f once it completes.
// If f completes with an error, fn is skipped and the error passes through
// unchanged. If ctx is canceled before f completes, the derived future
// completes with the context error instead of waiting further.
func Then[U, V any](ctx context.Context, f *Future[U], fn func(context.Context, U) (V, error)) *Future[V] {
	out := newFuture[V]()

	go func() {
		select {
		case <-ctx.Done():
			var zero V
			out.complete(zero, ctx.Err())
			return
		case <-f.done:
		}

		if f.err != nil {
			var zero V
			out.complete(zero, f.err)
			return
		}

		out.complete(fn(ctx, f.result))
	}()

	return out
}
