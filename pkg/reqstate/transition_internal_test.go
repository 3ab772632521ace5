package reqstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bogusEvent satisfies Event from inside the package to exercise the
// fail-fast branch that external callers cannot reach.
type bogusEvent[T any] struct{}

func (bogusEvent[T]) Kind() Kind { return Kind("bogus") }
func (bogusEvent[T]) isEvent(T)  {}

func TestTransition_PanicsOnUnknownEvent(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected Transition to panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, IsInvalidEventError(err))
		assert.Contains(t, err.Error(), "bogus")
	}()

	Transition(State[int]{}, bogusEvent[int]{})
}
