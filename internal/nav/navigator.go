package nav

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrUnknownRoute is returned when navigating to a route missing from the
// table.
var ErrUnknownRoute = errors.New("unknown route")

// Table maps each route to the constructor of its screen.
type Table[S any] map[Route]func() (S, error)

// Entry is one screen on the back stack.
type Entry[S any] struct {
	Screen S
	Route  Route
}

// Option adjusts a single navigation.
type Option func(*options)

type options struct {
	popUpTo   Route
	inclusive bool
}

// PopUpTo removes entries above the oldest occurrence of route before
// the new screen is pushed. With inclusive set, that entry is removed too.
// Nothing is removed when route is not on the stack.
func PopUpTo(route Route, inclusive bool) Option {
	return func(o *options) {
		o.popUpTo = route
		o.inclusive = inclusive
	}
}

// Navigator owns the back stack. Screens that implement io.Closer are
// closed when they leave the stack. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Navigator[S any] struct {
	table Table[S]
	stack []Entry[S]
}

// New creates a navigator with an empty stack.
func New[S any](table Table[S]) *Navigator[S] {
	return &Navigator[S]{table: table}
}

// Navigate builds the screen for route and pushes it.
func (n *Navigator[S]) Navigate(route Route, opts ...Option) (S, error) {
	var zero S
	build, ok := n.table[route]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	screen, err := build()
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", route, err)
	}

	if o.popUpTo != "" {
		n.popUpTo(o.popUpTo, o.inclusive)
	}

	n.stack = append(n.stack, Entry[S]{Route: route, Screen: screen})
	slog.Debug("navigated", "route", route, "depth", len(n.stack))
	return screen, nil
}

func (n *Navigator[S]) popUpTo(route Route, inclusive bool) {
	idx := -1
	for i := range n.stack {
		if n.stack[i].Route == route {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	keep := idx + 1
	if inclusive {
		keep = idx
	}
	for len(n.stack) > keep {
		n.pop()
	}
}

// Back pops the current screen. It reports false, leaving the stack
// untouched, when only the root screen remains.
func (n *Navigator[S]) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.pop()
	return true
}

func (n *Navigator[S]) pop() {
	last := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	if c, ok := any(last.Screen).(io.Closer); ok {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close screen", "route", last.Route, "error", err)
		}
	}
}

// Current returns the top entry, or false on an empty stack.
func (n *Navigator[S]) Current() (Entry[S], bool) {
	if len(n.stack) == 0 {
		return Entry[S]{}, false
	}
	return n.stack[len(n.stack)-1], true
}

// Stack returns the routes on the stack, bottom first.
func (n *Navigator[S]) Stack() []Route {
	routes := make([]Route, len(n.stack))
	for i, e := range n.stack {
		routes[i] = e.Route
	}
	return routes
}

// Close pops and closes every screen.
func (n *Navigator[S]) Close() {
	for len(n.stack) > 0 {
		n.pop()
	}
}
