package viewstate

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/coinviewer/internal/logging"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

// ViewState is a point-in-time copy of a holder's state.
type ViewState[T any] struct {
	Result       results.Result[T]
	IsRefreshing bool
}

// holder is the state machine shared by both screens.
type holder[T any] struct {
	result       *Flow[results.Result[T]]
	isRefreshing *Flow[bool]

	scope  context.Context
	cancel context.CancelFunc
	logger logging.Logger

	// mu guards closed and orders wg.Add against Close.
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup

	// pubMu keeps result and isRefreshing written as a pair.
	pubMu sync.Mutex
}

func newHolder[T any](parent context.Context, initial T, l logging.Logger) *holder[T] {
	if l == nil {
		l = logging.Nop()
	}
	scope, cancel := context.WithCancel(parent)
	return &holder[T]{
		result:       newFlow(results.NewSuccess(initial)),
		isRefreshing: newFlow(true),
		scope:        scope,
		cancel:       cancel,
		logger:       l,
	}
}

// Result is the observable outcome of the latest completed fetch.
func (h *holder[T]) Result() *Flow[results.Result[T]] {
	return h.result
}

// IsRefreshing is true while the screen should show a loading indicator.
func (h *holder[T]) IsRefreshing() *Flow[bool] {
	return h.isRefreshing
}

func (h *holder[T]) Snapshot() ViewState[T] {
	h.pubMu.Lock()
	defer h.pubMu.Unlock()
	return ViewState[T]{Result: h.result.Value(), IsRefreshing: h.isRefreshing.Value()}
}

// Wait blocks until every fetch started so far has finished.
func (h *holder[T]) Wait() {
	h.wg.Wait()
}

// Close tears the holder down with its screen. In-flight fetches see their
// context cancelled and their results are discarded. Close waits for them to
// return and is safe to call more than once.
func (h *holder[T]) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
}

// start launches one independent fetch. It is a no-op once the holder is
// closed.
func (h *holder[T]) start(markRefreshing bool, fetch func(ctx context.Context) results.Result[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	if markRefreshing {
		h.isRefreshing.set(true)
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				h.logger.Error(h.scope, "fetch panicked", "panic", p)
				h.publish(results.Failed[T]())
			}
		}()

		r := fetch(h.scope)

		h.publish(results.Fold(r,
			results.NewSuccess[T],
			func(message string) results.Result[T] {
				h.logger.Debug(h.scope, "fetch failed", "message", message)
				return results.Failed[T]()
			},
		))
	}()
}

func (h *holder[T]) publish(r results.Result[T]) {
	h.pubMu.Lock()
	defer h.pubMu.Unlock()

	if h.scope.Err() != nil {
		return
	}
	h.result.set(r)
	h.isRefreshing.set(false)
}
