package tui

import (
	"github.com/aphfiwiwi/biiscoti/internal/auth"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
)

// Live data messages.
type refreshMsg struct {
	target Screen
	source <-chan struct{}
	ok     bool // false once the source has stopped
}

// Navigation messages.
type navigateMsg struct {
	route nav.Route
	opts  []nav.Option
}

// Async operation messages.
type loginDoneMsg struct {
	err     error
	session auth.Session
}

type registerDoneMsg struct {
	err  error
	cred model.Credential
}

type dialedMsg struct {
	err   error
	phone string
}

// Error handling.
type errorMsg struct {
	err error
}
