package reqstate

// State is the externally observable snapshot of one tracked request.
// The zero value is the initial state and the state after a reset.
type State[T any] struct {
	// Loading is true strictly between the start of a request and its
	// terminal event.
	Loading bool

	// Data holds the most recently received result. A stale value left over
	// from an earlier generation stays in place until a newer success
	// overwrites it; starting a new request does not clear it.
	Data *T

	// Err holds the most recent failure. Like Data, it is only replaced by a
	// newer terminal event, never cleared on start.
	Err error
}

// Kind identifies the transition an Event requests.
type Kind string

const (
	KindInit  Kind = "init"
	KindStart Kind = "start"
	KindData  Kind = "data"
	KindError Kind = "error"
)

// Event is a transition request fed to Transition. The interface is sealed:
// only the event types defined in this package satisfy it.
type Event[T any] interface {
	Kind() Kind
	isEvent(T)
}

// InitEvent resets the state to its initial value.
type InitEvent[T any] struct{}

func (InitEvent[T]) Kind() Kind { return KindInit }
func (InitEvent[T]) isEvent(T)  {}

// StartEvent marks the beginning of a new request generation.
type StartEvent[T any] struct{}

func (StartEvent[T]) Kind() Kind { return KindStart }
func (StartEvent[T]) isEvent(T)  {}

// DataEvent carries a successful result.
type DataEvent[T any] struct {
	Value T
}

func (DataEvent[T]) Kind() Kind { return KindData }
func (DataEvent[T]) isEvent(T)  {}

// ErrorEvent carries a failed result.
type ErrorEvent[T any] struct {
	Err error
}

func (ErrorEvent[T]) Kind() Kind { return KindError }
func (ErrorEvent[T]) isEvent(T)  {}

// Transition maps (state, event) to the next state. It is pure: no side
// effects, no I/O, and the input state is never mutated.
//
// Terminal events arriving while Loading is false are dropped, which keeps
// the machine consistent when a duplicate or late terminal event reaches it
// after a reset. A DataEvent does not clear a stale Err and an ErrorEvent
// does not clear stale Data; stale values persist until a newer terminal
// event replaces them.
//
// Transition panics with *InvalidEventError on an event kind it does not
// know. An unknown event indicates a bug in the dispatching code and is not
// recoverable.
func Transition[T any](s State[T], ev Event[T]) State[T] {
	switch e := ev.(type) {
	case InitEvent[T]:
		return State[T]{}
	case StartEvent[T]:
		if s.Loading {
			return s
		}
		s.Loading = true
		return s
	case DataEvent[T]:
		if !s.Loading {
			return s
		}
		v := e.Value
		s.Loading = false
		s.Data = &v
		return s
	case ErrorEvent[T]:
		if !s.Loading {
			return s
		}
		s.Loading = false
		s.Err = e.Err
		return s
	default:
		panic(&InvalidEventError{Kind: ev.Kind()})
	}
}
