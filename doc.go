// Package fetchstate tracks the lifecycle of a single asynchronous HTTP
// request and exposes it as a minimal observable state object: whether a
// request is in flight, the most recently received result, and the most
// recent error. It is built for consumers that re-render in response to
// state changes.
//
// The heavy lifting lives in two subpackages: reqstate holds the pure state
// machine and watch holds the lifecycle controller that cancels a superseded
// request before starting its replacement. This package wires them together
// with the default HTTP transport and a JSON unwrap.
//
// # Usage
//
//	type User struct {
//	    Name string `json:"name"`
//	}
//
//	client := transport.NewClient()
//	w := fetchstate.MustNewJSON[User](client)
//	defer w.Close()
//
//	updates := w.Subscribe(ctx)
//	w.Observe(ctx, "https://api.example.com/user", transport.Options{})
//	for state := range updates {
//	    switch {
//	    case state.Loading:
//	        showSpinner()
//	    case state.Err != nil:
//	        showError(state.Err)
//	    case state.Data != nil:
//	        showUser(*state.Data)
//	    }
//	}
//
// Calling Observe again with a different target or options cancels the
// in-flight request, resets the state, and starts a new one; the superseded
// request's outcome is never observed. An empty target means "no request
// desired" and produces the initial state without touching the network.
//
// Results are reported as state, never as faults: transport failures,
// non-2xx statuses, and body-decoding errors all land verbatim in the Err
// field. Retries, caching, and deduplication are intentionally out of scope;
// put them in a Transport wrapper if you need them.
package fetchstate
