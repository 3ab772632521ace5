// Package reqstate implements the pure state machine behind an observable
// request lifecycle: whether a request is in flight, the most recently
// received result, and the most recent error.
//
// The package revolves around two types. State is the snapshot a consumer
// reads at any instant, and Event is a sealed set of transition requests
// (InitEvent, StartEvent, DataEvent, ErrorEvent) fed into the pure Transition
// function by a lifecycle controller such as the watch package.
//
// # Transition semantics
//
// Transition is total for the four defined event kinds:
//
//   - InitEvent resets to the zero State.
//   - StartEvent sets Loading and is idempotent while a request is in flight.
//   - DataEvent and ErrorEvent end the loading phase and record the outcome,
//     but only while Loading is true; otherwise they are dropped.
//
// The drop guard on terminal events makes the machine robust against
// duplicate or late events reaching it after a reset. Note that a terminal
// event never clears the opposite field: after a failure the previous Data
// value is still visible next to Err, and after a success a previous Err is
// still visible next to Data. Consumers decide whether to show stale values.
//
// # Usage
//
//	state := reqstate.State[User]{}
//	state = reqstate.Transition(state, reqstate.StartEvent[User]{})
//	// state.Loading == true
//	state = reqstate.Transition(state, reqstate.DataEvent[User]{Value: u})
//	// state.Loading == false, *state.Data == u
//
// Transition panics with *InvalidEventError if handed an event kind outside
// the sealed set, which indicates a programming error in the caller.
package reqstate
