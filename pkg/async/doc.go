// Package async provides small generic helpers for running a computation in
// its own goroutine and consuming the eventual result as a value.
//
// The central type is Future, which represents the result of a computation
// that may still be running. Go starts a function asynchronously and returns
// a *Future immediately; Then chains a transform onto an existing future,
// producing a derived future that completes with the transformed value or the
// first error along the chain.
//
// Both Go and Then are context-aware: a context canceled before the work runs
// (or, for Then, before the upstream future completes) resolves the future
// with the context error, which makes cancellation observable through the
// same channel as ordinary failures.
//
//	future := async.Go(ctx, func(ctx context.Context) (*transport.Response, error) {
//	    return client.Send(ctx, target, opts)
//	})
//	decoded := async.Then(ctx, future, unwrap)
//	value, err := decoded.Await()
//
// A Future can be waited on with Await, bounded with AwaitWithTimeout, or
// polled with IsComplete. Awaiting does not cancel the computation; cancel
// the context passed to Go for that.
package async
