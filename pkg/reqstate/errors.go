package reqstate

import (
	"errors"
	"fmt"
)

// InvalidEventError reports an event kind Transition does not recognize.
// It is used as a panic value rather than a return value: an unrecognized
// event can only be produced by a bug in the dispatching controller, so
// execution aborts instead of silently continuing.
type InvalidEventError struct {
	Kind Kind
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("reqstate: invalid event kind %q", e.Kind)
}

// IsInvalidEventError reports whether err is an *InvalidEventError.
func IsInvalidEventError(err error) bool {
	var e *InvalidEventError
	return errors.As(err, &e)
}
