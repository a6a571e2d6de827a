package storage

import (
	"context"
	"sync"
)

// notifier fans a "table changed" signal out to every subscriber. Signals
// are coalesced: a subscriber that has not consumed the previous signal
// sees a single pending one.
type notifier struct {
	subs   map[int]chan struct{}
	mu     sync.Mutex
	next   int
	closed bool
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan struct{})}
}

// subscribe registers a listener. The returned channel is closed when the
// notifier is closed; cancel removes the listener.
func (n *notifier) subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.next
	n.next++
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}

// Watch is a live sequence of table snapshots. The first snapshot reflects
// the table when the watch started; each later one follows a mutation.
// A consumer that falls behind receives the newest snapshot, not every
// intermediate one. The sequence ends when its context is cancelled, the
// table is closed, or a query fails.
type Watch[T any] struct {
	err     error
	updates chan []T
	done    chan struct{}
	mu      sync.Mutex
}

// Updates returns the snapshot channel. It is closed when the watch ends.
func (w *Watch[T]) Updates() <-chan []T {
	return w.updates
}

// Done is closed once the watch goroutine has exited.
func (w *Watch[T]) Done() <-chan struct{} {
	return w.done
}

// Err returns the query error that ended the watch, if any. Cancellation
// is not an error.
func (w *Watch[T]) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Watch[T]) setErr(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.err = err
}

func (t *Table[T]) watch(ctx context.Context, load func(context.Context) ([]T, error)) *Watch[T] {
	w := &Watch[T]{
		updates: make(chan []T),
		done:    make(chan struct{}),
	}

	if err := validateContext(ctx); err != nil {
		w.err = err
		close(w.updates)
		close(w.done)
		return w
	}

	// Subscribe before the first load so no mutation slips between them.
	changed, cancel := t.changes.subscribe()

	go func() {
		defer close(w.done)
		defer close(w.updates)
		defer cancel()

		for {
			snapshot, err := load(ctx)
			if err != nil {
				if ctx.Err() == nil {
					w.setErr(err)
				}
				return
			}

			select {
			case w.updates <- snapshot:
			case _, ok := <-changed:
				if !ok {
					return
				}
				// Stale before anyone saw it; reload.
				continue
			case <-ctx.Done():
				return
			}

			select {
			case _, ok := <-changed:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return w
}
