// Package watch implements the lifecycle controller that drives the reqstate
// state machine for one logical request subscription.
//
// A Watcher is created with a transport and an unwrap transform and is then
// re-evaluated through Observe whenever the desired request may have changed.
// Observe derives a normalized Identity (target, method, headers) from its
// arguments; when the identity differs from the previous evaluation, the
// watcher cancels the request that is still in flight, resets the state, and
// starts a new one. When it is unchanged, Observe just returns the current
// snapshot.
//
// # Generations and cancellation
//
// Each identity change starts a new generation. Teardown of the old
// generation does three things, in order: it cancels the request context,
// bumps the generation counter, and applies an InitEvent. The bumped counter
// makes the old generation's pending continuation inert, so a response (or
// the abort error produced by the cancellation itself) that arrives late can
// never surface as state. Per generation the event order is fixed: one
// StartEvent, then at most one DataEvent or ErrorEvent.
//
// Failures are never propagated as faults. Transport rejections and unwrap
// errors alike land verbatim in the state's Err field; the watcher does not
// classify, retry, or transform them. Note that a failure does not clear
// previously received data: consumers see both and choose what to display.
//
// # Observing state
//
// Besides the snapshot returned by Observe and State, subscribers can watch
// transitions as they happen:
//
//	w := watch.MustNew(client, unwrap)
//	defer w.Close()
//
//	updates := w.Subscribe(ctx)
//	w.Observe(ctx, "https://api.example.com/user", transport.Options{})
//	for state := range updates {
//	    render(state)
//	}
//
// An empty target means "no request desired": the state stays initial and
// the transport is never invoked.
package watch
