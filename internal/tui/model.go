package tui

import (
	"context"
	"log/slog"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	theme    themes.Theme
	env      *env
	nav      *nav.Navigator[Screen]
	status   viewmodel.StatusView
	help     help.Model
	config   Config
	keymap   KeyMap
	height   int
	width    int
	showHelp bool
	quitting bool
}

// chromeHeight is the space taken by the top bar, bottom bar and help.
const chromeHeight = 6

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	e := &env{
		ctx:      ctx,
		registry: cfg.Registry,
		accounts: cfg.Accounts,
		dialer:   cfg.Dialer,
		phone:    cfg.ContactPhone,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
	}

	return Model{
		config:   cfg,
		env:      e,
		nav:      nav.New(routeTable(e)),
		keymap:   e.keymap,
		theme:    cfg.Theme,
		help:     help.New(),
		width:    cfg.Width,
		height:   cfg.Height,
		showHelp: cfg.ShowHelp,
	}
}

// routeTable binds every route to its screen.
func routeTable(e *env) nav.Table[Screen] {
	table := nav.Table[Screen]{
		nav.Splash:   func() (Screen, error) { return newSplashScreen(e), nil },
		nav.Login:    func() (Screen, error) { return newLoginScreen(e), nil },
		nav.Register: func() (Screen, error) { return newRegisterScreen(e), nil },
		nav.Home:     func() (Screen, error) { return newHomeScreen(e), nil },
		nav.Contact:  func() (Screen, error) { return newContactScreen(e), nil },
		nav.Search:   func() (Screen, error) { return newSearchScreen(e) },
		nav.Profile:  func() (Screen, error) { return newProfileScreen(e) },
	}

	for _, c := range model.Categories() {
		table[nav.ForCategory(c)] = func() (Screen, error) {
			return newListingScreen(e, c, false)
		}
		if route, ok := nav.AdminFor(c); ok {
			table[route] = func() (Screen, error) {
				return newListingScreen(e, c, true)
			}
		}
	}
	return table
}

// Init opens the start screen.
func (m Model) Init() tea.Cmd {
	return m.open(m.config.StartRoute)
}

func (m Model) open(route nav.Route, opts ...nav.Option) tea.Cmd {
	screen, err := m.nav.Navigate(route, opts...)
	if err != nil {
		slog.Error("navigation failed", "route", route, "error", err)
		return func() tea.Msg { return errorMsg{err: err} }
	}
	screen.SetSize(m.width, m.height-chromeHeight)
	return screen.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if cur, ok := m.nav.Current(); ok {
			cur.Screen.SetSize(m.width, m.height-chromeHeight)
		}
		return m, nil

	case refreshMsg:
		// delivered to its screen even when another screen is on top
		return m, msg.target.Update(msg)

	case navigateMsg:
		m.status = viewmodel.StatusView{}
		return m, m.open(msg.route, msg.opts...)

	case loginDoneMsg:
		if msg.err == nil {
			session := msg.session
			m.env.session = &session
			slog.Info("signed in", "username", session.Username, "role", session.Role)
		}

	case errorMsg:
		m.status = viewmodel.Failure(msg.err)
		return m, nil
	}

	cur, ok := m.nav.Current()
	if !ok {
		return m, nil
	}
	return m, cur.Screen.Update(msg)
}

// goBack pops the current screen; backing out of the root quits.
func (m *Model) goBack() tea.Cmd {
	if !m.nav.Back() {
		m.quitting = true
		return tea.Quit
	}
	m.status = viewmodel.StatusView{}
	if cur, ok := m.nav.Current(); ok {
		cur.Screen.SetSize(m.width, m.height-chromeHeight)
	}
	return nil
}

// handleGlobalKeys handles keys that work on every screen.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Back):
		return m.goBack(), true

	case key.Matches(msg, m.keymap.Help) && !m.capturingText():
		m.showHelp = !m.showHelp
		return nil, true
	}

	if !m.onAuthScreen() {
		for _, item := range bottomNav {
			if msg.String() == item.key {
				// keep a single home entry under the chosen tab
				return navigate(item.route, nav.PopUpTo(nav.Home, item.route == nav.Home)), true
			}
		}
	}
	return nil, false
}

func (m Model) capturingText() bool {
	cur, ok := m.nav.Current()
	if !ok {
		return false
	}
	te, ok := cur.Screen.(textEntry)
	return ok && te.CapturesText()
}

func (m Model) onAuthScreen() bool {
	cur, ok := m.nav.Current()
	if !ok {
		return true
	}
	switch cur.Route {
	case nav.Splash, nav.Login, nav.Register:
		return true
	}
	return false
}

// Route returns the current route.
func (m Model) Route() nav.Route {
	cur, _ := m.nav.Current()
	return cur.Route
}

// Close closes every open screen.
func (m Model) Close() {
	m.nav.Close()
}
