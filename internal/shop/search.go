package shop

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aphfiwiwi/biiscoti/internal/storage"
)

// Searcher is the access layer a Search drives.
type Searcher[T any] interface {
	SelectByName(ctx context.Context, pattern string) *storage.Watch[T]
}

// Search keeps live results for a name query. Changing the query cancels
// the previous subscription, and results from an older query are never
// published after a newer query has been set.
type Search[T any] struct {
	source  Searcher[T]
	parent  context.Context
	cancel  context.CancelFunc
	updates chan struct{}
	query   string
	results []T
	wg      sync.WaitGroup
	gen     int
	mu      sync.Mutex
	started bool
	closed  bool
}

// NewSearch creates a search over source and subscribes to the empty
// query, which matches every row.
func NewSearch[T any](ctx context.Context, source Searcher[T]) *Search[T] {
	s := &Search[T]{
		source:  source,
		parent:  ctx,
		updates: make(chan struct{}, 1),
	}
	s.SetQuery("")
	return s
}

// SetQuery switches the live subscription to query.
func (s *Search[T]) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || (s.started && query == s.query) {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}

	s.started = true
	s.query = query
	s.results = nil
	s.gen++
	gen := s.gen

	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	watch := s.source.SelectByName(ctx, query)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for snap := range watch.Updates() {
			s.publish(gen, snap)
		}
		if err := watch.Err(); err != nil {
			slog.Error("search subscription failed", "query", query, "error", err)
		}
	}()
}

func (s *Search[T]) publish(gen int, snap []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.closed {
		return
	}
	s.results = snap
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Results returns the current query and its latest results. Results is nil
// until the first snapshot for the query arrives.
func (s *Search[T]) Results() (string, []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.results
}

// Updates is signalled whenever Results changes and closed by Close.
func (s *Search[T]) Updates() <-chan struct{} {
	return s.updates
}

// Close cancels the subscription and waits for it to finish.
func (s *Search[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
	close(s.updates)
}
