package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal app and blocks until the user quits or ctx is
// cancelled. Every open screen is closed before it returns.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Registry == nil {
		return fmt.Errorf("registry is required")
	}
	if cfg.Accounts == nil {
		return fmt.Errorf("account service is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(ctx, cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// New builds the root model without starting a program, for embedding
// and tests.
func New(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(ctx, cfg)
}
