package shop

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
	"golang.org/x/sync/errgroup"
)

// Store is the access layer a Catalog drives.
type Store[T any] interface {
	InsertOrReplace(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, rec T) error
	SelectAll(ctx context.Context) *storage.Watch[T]
}

// ErrCatalogClosed is returned by Flush after Close.
var ErrCatalogClosed = errors.New("catalog closed")

const writeQueueSize = 64

// Catalog keeps the latest snapshot of a table and applies user edits to
// it. Writes run in order on a background goroutine; callers never wait
// for them. A new snapshot arrives once the table has changed.
type Catalog[T any] struct {
	lastErr  error
	store    Store[T]
	cancel   context.CancelFunc
	writeCtx context.Context
	group    *errgroup.Group
	writes   chan func(context.Context)
	updates  chan struct{}
	name     string
	snapshot []T
	mu       sync.RWMutex
	// qmu guards closed and sends on writes. The write loop never takes it.
	qmu    sync.Mutex
	loaded bool
	closed bool
}

// NewCatalog starts observing store. The observation stops when ctx is
// cancelled or Close is called.
func NewCatalog[T any](ctx context.Context, name string, store Store[T]) *Catalog[T] {
	watchCtx, cancel := context.WithCancel(ctx)
	c := &Catalog[T]{
		name:     name,
		store:    store,
		cancel:   cancel,
		writeCtx: context.WithoutCancel(ctx),
		group:    &errgroup.Group{},
		writes:   make(chan func(context.Context), writeQueueSize),
		updates:  make(chan struct{}, 1),
	}

	watch := store.SelectAll(watchCtx)
	c.group.Go(func() error { return c.observe(watch) })
	c.group.Go(c.writeLoop)

	return c
}

func (c *Catalog[T]) observe(watch *storage.Watch[T]) error {
	defer close(c.updates)

	for snap := range watch.Updates() {
		c.mu.Lock()
		c.snapshot = snap
		c.loaded = true
		c.mu.Unlock()

		select {
		case c.updates <- struct{}{}:
		default:
		}
	}

	if err := watch.Err(); err != nil {
		slog.Error("catalog observation failed", "catalog", c.name, "error", err)
		c.setErr(err)
		return err
	}
	return nil
}

func (c *Catalog[T]) writeLoop() error {
	for write := range c.writes {
		write(c.writeCtx)
	}
	return nil
}

// Snapshot returns the latest rows and whether any snapshot has arrived yet.
func (c *Catalog[T]) Snapshot() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.loaded
}

// Updates is signalled after every new snapshot and closed when
// observation ends.
func (c *Catalog[T]) Updates() <-chan struct{} {
	return c.updates
}

// LastErr returns the most recent storage failure.
func (c *Catalog[T]) LastErr() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Catalog[T]) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}

// Add stores rec in the background.
func (c *Catalog[T]) Add(rec T) {
	c.enqueue(func(ctx context.Context) {
		if _, err := c.store.InsertOrReplace(ctx, rec); err != nil {
			common.LogError(err, "failed to save record", common.Fields{"catalog": c.name})
			c.setErr(err)
		}
	})
}

// Remove deletes rec in the background. There is no confirmation step.
func (c *Catalog[T]) Remove(rec T) {
	c.enqueue(func(ctx context.Context) {
		if err := c.store.Delete(ctx, rec); err != nil {
			common.LogError(err, "failed to delete record", common.Fields{"catalog": c.name})
			c.setErr(err)
		}
	})
}

// Submit parses form and adds the result. Invalid input is dropped
// without touching the store; the return value reports whether a write
// was queued.
func (c *Catalog[T]) Submit(form Form[T]) bool {
	rec, err := form.Parse()
	if err != nil {
		slog.Debug("form rejected", "catalog", c.name, "reason", err)
		return false
	}
	c.Add(rec)
	return true
}

// Flush blocks until every write queued so far has been applied.
func (c *Catalog[T]) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if !c.enqueue(func(context.Context) { close(done) }) {
		return ErrCatalogClosed
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Catalog[T]) enqueue(write func(context.Context)) bool {
	c.qmu.Lock()
	defer c.qmu.Unlock()
	if c.closed {
		slog.Warn("write after close dropped", "catalog", c.name)
		return false
	}
	c.writes <- write
	return true
}

// Close stops observing, applies pending writes and waits for both
// goroutines to exit.
func (c *Catalog[T]) Close() error {
	c.qmu.Lock()
	if c.closed {
		c.qmu.Unlock()
		return nil
	}
	c.closed = true
	close(c.writes)
	c.qmu.Unlock()

	c.cancel()
	return c.group.Wait()
}
