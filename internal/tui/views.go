package tui

import (
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

type bottomNavItem struct {
	label string
	key   string
	route nav.Route
}

// bottomNav mirrors the tab bar shown under every shopping screen.
var bottomNav = []bottomNavItem{
	{label: "Home", key: "f1", route: nav.Home},
	{label: "Places", key: "f2", route: nav.Restaurants},
	{label: "Bakery", key: "f3", route: nav.Bakery},
	{label: "Search", key: "f4", route: nav.Search},
	{label: "Profile", key: "f5", route: nav.Profile},
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cur, ok := m.nav.Current()
	if !ok {
		return m.theme.Muted.Render("Nothing to show")
	}

	sections := []string{
		m.theme.TopBar.Width(max(m.width, 20)).Render(cur.Screen.Title()),
		lipgloss.NewStyle().Padding(1, 2).Render(cur.Screen.View()),
	}
	if !m.status.IsEmpty() {
		sections = append(sections, renderStatus(m.theme, m.status))
	}
	if !m.onAuthScreen() {
		sections = append(sections, m.renderBottomNav(cur.Route))
	}
	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keymap.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keymap.ShortHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBottomNav renders the tab bar with the current tab highlighted.
func (m Model) renderBottomNav(current nav.Route) string {
	items := make([]viewmodel.NavItem, len(bottomNav))
	for i, item := range bottomNav {
		items[i] = viewmodel.NavItem{
			Label:  item.label,
			Key:    strings.ToUpper(item.key),
			Active: item.route == current,
		}
	}

	parts := make([]string, len(items))
	for i, item := range items {
		style := m.theme.NavItem
		if item.Active {
			style = m.theme.NavActive
		}
		parts[i] = style.Render(item.Key + " " + item.Label)
	}
	return m.theme.NavBar.Width(max(m.width, 20)).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, parts...),
	)
}

// renderStatus renders a status line, or nothing.
func renderStatus(t themes.Theme, s viewmodel.StatusView) string {
	if s.IsEmpty() {
		return ""
	}
	switch s.Kind {
	case viewmodel.StatusError:
		return t.StatusError.Render(s.Message)
	case viewmodel.StatusSuccess:
		return t.StatusSuccess.Render(s.Message)
	default:
		return t.StatusInfo.Render(s.Message)
	}
}
