package tui

import (
	"context"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	tea "github.com/charmbracelet/bubbletea"
)

const actionTimeout = 10 * time.Second

// waitForUpdate blocks until updates fires and hands target a refreshMsg.
// The receiver re-arms it after each delivery.
func waitForUpdate(target Screen, updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-updates
		return refreshMsg{target: target, source: updates, ok: ok}
	}
}

// navigate asks the root model to push route.
func navigate(route nav.Route, opts ...nav.Option) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: route, opts: opts}
	}
}

// login checks credentials off the event loop.
func login(ctx context.Context, accounts *shop.Accounts, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, actionTimeout)
		defer cancel()

		session, err := accounts.Login(ctx, username, password)
		return loginDoneMsg{session: session, err: err}
	}
}

// register creates an account off the event loop.
func register(ctx context.Context, accounts *shop.Accounts, form shop.RegisterForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, actionTimeout)
		defer cancel()

		cred, err := accounts.Register(ctx, form)
		return registerDoneMsg{cred: cred, err: err}
	}
}

// dial hands phone to the dialer.
func dial(ctx context.Context, d Dialer, phone string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, actionTimeout)
		defer cancel()

		return dialedMsg{phone: phone, err: d.Dial(ctx, phone)}
	}
}
