package viewstate

import "sync"

// Flow is an observable value. Reads always see the latest write;
// subscribers receive the current value on subscription and every later
// one, with intermediate values conflated when a subscriber falls behind.
//
// Only this package can write to a Flow.
type Flow[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[int]chan T
	next  int
}

func newFlow[T any](initial T) *Flow[T] {
	return &Flow[T]{value: initial, subs: make(map[int]chan T)}
}

// Value returns the current value.
func (f *Flow[T]) Value() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Subscribe returns a channel that yields the current value immediately and
// then each update. The cancel func closes the channel and must be called
// when the observer goes away.
func (f *Flow[T]) Subscribe() (<-chan T, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan T, 1)
	ch <- f.value
	f.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (f *Flow[T]) set(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.value = v
	for _, ch := range f.subs {
		select {
		case ch <- v:
		default:
			// Subscriber is behind: replace the stale value. Writers hold the
			// lock, so after the drain the send cannot block.
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}
