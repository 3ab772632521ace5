package watch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fetchstate/pkg/async"
	"github.com/dmitrymomot/fetchstate/pkg/reqstate"
	"github.com/dmitrymomot/fetchstate/pkg/transport"
)

// Unwrap transforms the raw transport response into the caller's result
// type. Errors it returns surface verbatim in the observed state, exactly
// like transport failures.
type Unwrap[T any] func(ctx context.Context, resp *transport.Response) (T, error)

// Watcher tracks the lifecycle of at most one in-flight request and exposes
// the latest observable snapshot. State only changes through reqstate
// transitions driven by the watcher itself; there is no shared global.
//
// A watcher owns a generation counter. Every teardown bumps it, which turns
// the continuation of any still-pending request into a no-op: an outcome
// from a superseded generation can never be observed as state belonging to a
// newer one. The loading guards inside reqstate.Transition are a second,
// redundant line of defense.
//
// All methods are safe for concurrent use.
type Watcher[T any] struct {
	transport transport.Transport
	unwrap    Unwrap[T]
	log       *slog.Logger
	buffer    int

	mu       sync.Mutex
	state    reqstate.State[T]
	identity Identity
	seen     bool
	gen      uint64
	cancel   context.CancelFunc
	subs     map[*subscriber[T]]struct{}
	closed   bool
}

// New creates a watcher over tr whose results are produced by unwrap.
func New[T any](tr transport.Transport, unwrap Unwrap[T], opts ...Option) (*Watcher[T], error) {
	if tr == nil {
		return nil, ErrNilTransport
	}
	if unwrap == nil {
		return nil, ErrNilUnwrap
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Watcher[T]{
		transport: tr,
		unwrap:    unwrap,
		log:       cfg.logger,
		buffer:    cfg.buffer,
		subs:      make(map[*subscriber[T]]struct{}),
	}, nil
}

// MustNew is like New but panics on invalid arguments, for initialization
// paths where a nil collaborator should prevent startup.
func MustNew[T any](tr transport.Transport, unwrap Unwrap[T], opts ...Option) *Watcher[T] {
	w, err := New(tr, unwrap, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Observe re-evaluates the desired request. When the identity derived from
// target and opts differs from the previous evaluation, or on the first
// evaluation, any prior generation is torn down (canceled, made inert, and
// the state reset) and, unless the target is empty, a new request starts:
// a StartEvent is applied synchronously, the transport call is issued on a
// fresh cancellable context, and its outcome will arrive later as a DataEvent
// or ErrorEvent. When the identity is unchanged, Observe has no side effects.
//
// The returned snapshot reflects every transition applied synchronously by
// this call. Observe never blocks on the network.
func (w *Watcher[T]) Observe(ctx context.Context, target string, opts transport.Options) reqstate.State[T] {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return w.state
	}

	id := NewIdentity(target, opts)
	if w.seen && id.Equal(w.identity) {
		return w.state
	}

	w.teardownLocked()
	w.identity = id
	w.seen = true

	if id.Empty() {
		return w.state
	}

	w.dispatchLocked(reqstate.StartEvent[T]{})

	gen := w.gen
	requestID := uuid.NewString()

	// The watcher owns the request lifetime: cancellation happens through
	// teardown, not through the context that triggered this evaluation.
	reqCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.cancel = cancel

	w.log.DebugContext(ctx, "request started",
		slog.String("target", target),
		slog.String("method", string(id.Method())),
		slog.String("request_id", requestID),
		slog.Uint64("generation", gen),
	)

	raw := async.Go(reqCtx, func(ctx context.Context) (*transport.Response, error) {
		return w.transport.Send(ctx, target, opts)
	})
	unwrapped := async.Then(reqCtx, raw, w.unwrap)

	go w.settle(gen, requestID, unwrapped)

	return w.state
}

// State returns the current snapshot.
func (w *Watcher[T]) State() reqstate.State[T] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Close tears down the watcher: it cancels any in-flight request exactly
// once, makes late continuations inert, resets the state, and closes all
// subscriber channels. Close is idempotent. Observe calls made after Close
// return the initial state and start nothing.
func (w *Watcher[T]) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	for sub := range w.subs {
		sub.close()
	}
	clear(w.subs)

	w.teardownLocked()
	return nil
}

// settle waits for the request generation to resolve and dispatches its
// terminal event, unless the generation was superseded in the meantime.
func (w *Watcher[T]) settle(gen uint64, requestID string, f *async.Future[T]) {
	value, err := f.Await()

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.gen {
		// Superseded or torn down. The outcome, including any abort error
		// caused by the teardown's own cancellation, must not be observed.
		return
	}

	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}

	if err != nil {
		w.log.Debug("request failed",
			slog.String("request_id", requestID),
			slog.Uint64("generation", gen),
			slog.Any("error", err),
		)
		w.dispatchLocked(reqstate.ErrorEvent[T]{Err: err})
		return
	}

	w.log.Debug("request completed",
		slog.String("request_id", requestID),
		slog.Uint64("generation", gen),
	)
	w.dispatchLocked(reqstate.DataEvent[T]{Value: value})
}

// teardownLocked supersedes the current generation: it cancels any in-flight
// request, bumps the generation counter so pending continuations become
// no-ops, and resets the state. The reset is skipped on the very first
// evaluation, when no prior generation exists.
func (w *Watcher[T]) teardownLocked() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.gen++

	if w.seen {
		w.dispatchLocked(reqstate.InitEvent[T]{})
	}
}

// dispatchLocked feeds one event through the state machine and notifies
// subscribers of the new snapshot. Subscribers that cannot keep up are
// dropped rather than allowed to block dispatch.
func (w *Watcher[T]) dispatchLocked(ev reqstate.Event[T]) {
	w.state = reqstate.Transition(w.state, ev)

	w.log.Debug("state transition",
		slog.String("event", string(ev.Kind())),
		slog.Bool("loading", w.state.Loading),
		slog.Uint64("generation", w.gen),
	)

	for sub := range w.subs {
		if !sub.send(w.state) {
			delete(w.subs, sub)
			sub.close()
		}
	}
}
