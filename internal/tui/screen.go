package tui

import (
	"context"
	"errors"

	"github.com/aphfiwiwi/biiscoti/internal/auth"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoRegistry = errors.New("no data directory configured")

// Screen is one page of the app. Screens are owned by the navigator and
// closed (when they implement io.Closer) once they leave the back stack.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Title() string
	SetSize(width, height int)
}

// textEntry is implemented by screens whose keys go to a text field, so
// printable global shortcuts must not fire.
type textEntry interface {
	CapturesText() bool
}

// env carries what screens need from the app.
type env struct {
	ctx      context.Context
	registry *storage.Registry
	accounts *shop.Accounts
	dialer   Dialer
	session  *auth.Session
	phone    string
	theme    themes.Theme
	keymap   KeyMap
}

func (e *env) isAdmin() bool {
	return e.session != nil && e.session.Role == model.RoleAdmin
}

// frame stores the area a screen may draw in.
type frame struct {
	width  int
	height int
}

func (f *frame) SetSize(width, height int) {
	f.width = width
	f.height = height
}
