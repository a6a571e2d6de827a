// Package viewmodel holds plain display data for the TUI screens.
package viewmodel

import "github.com/aphfiwiwi/biiscoti/internal/common"

// StatusKind classifies a status line.
type StatusKind int

const (
	// StatusNone means no status line is shown.
	StatusNone StatusKind = iota
	// StatusInfo is a neutral notice.
	StatusInfo
	// StatusSuccess confirms a completed action.
	StatusSuccess
	// StatusError reports a failed action.
	StatusError
)

// StatusView is the one-line message under a screen.
type StatusView struct {
	Message string
	Kind    StatusKind
}

// Info returns a neutral status.
func Info(msg string) StatusView {
	return StatusView{Message: msg, Kind: StatusInfo}
}

// Success returns a success status.
func Success(msg string) StatusView {
	return StatusView{Message: msg, Kind: StatusSuccess}
}

// Failure returns an error status carrying the user-facing part of err.
func Failure(err error) StatusView {
	if err == nil {
		return StatusView{}
	}
	return StatusView{Message: common.UserMessage(err), Kind: StatusError}
}

// IsEmpty returns true if there is nothing to show.
func (s StatusView) IsEmpty() bool {
	return s.Kind == StatusNone || s.Message == ""
}

// HasError returns true if the status reports a failure.
func (s StatusView) HasError() bool {
	return s.Kind == StatusError && s.Message != ""
}

// NavItem is one entry of the bottom navigation bar.
type NavItem struct {
	Label  string
	Key    string
	Active bool
}
