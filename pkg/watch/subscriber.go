package watch

import (
	"context"
	"sync"

	"github.com/dmitrymomot/fetchstate/pkg/reqstate"
)

type subscriber[T any] struct {
	ch     chan reqstate.State[T]
	mu     sync.Mutex
	closed bool
}

func newSubscriber[T any](buffer int) *subscriber[T] {
	// A zero-capacity channel would make every send blocking and defeat the
	// drop-on-full policy, so enforce a minimum of one.
	return &subscriber[T]{ch: make(chan reqstate.State[T], max(buffer, 1))}
}

// send delivers a snapshot without blocking. It reports false when the
// subscriber is closed or its buffer is full.
func (s *subscriber[T]) send(state reqstate.State[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- state:
		return true
	default:
		return false
	}
}

func (s *subscriber[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// Subscribe registers an observer that is notified on every state
// transition. The returned channel is buffered; a subscriber whose buffer is
// full at dispatch time is dropped and its channel closed rather than being
// allowed to block the watcher. The subscription also ends, and the channel
// closes, when ctx is done or the watcher is closed.
func (w *Watcher[T]) Subscribe(ctx context.Context) <-chan reqstate.State[T] {
	w.mu.Lock()
	defer w.mu.Unlock()

	sub := newSubscriber[T](w.buffer)
	if w.closed {
		sub.close()
		return sub.ch
	}
	w.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			w.unsubscribe(sub)
		}()
	}

	return sub.ch
}

func (w *Watcher[T]) unsubscribe(sub *subscriber[T]) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.subs, sub)
	sub.close()
}
