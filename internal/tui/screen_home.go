package tui

import (
	"fmt"
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	icon  string
	route nav.Route
}

// homeScreen is the shop menu.
type homeScreen struct {
	frame
	env    *env
	items  []menuItem
	cursor int
}

func newHomeScreen(e *env) *homeScreen {
	items := make([]menuItem, 0, len(model.Categories())+3)
	for _, c := range model.Categories() {
		items = append(items, menuItem{
			label: c.Info().Title,
			icon:  themes.GetCategoryIcon(c),
			route: nav.ForCategory(c),
		})
	}
	items = append(items,
		menuItem{label: "Search", icon: "🔍", route: nav.Search},
		menuItem{label: "Profile", icon: "👤", route: nav.Profile},
		menuItem{label: "Contact Us", icon: "📞", route: nav.Contact},
	)
	return &homeScreen{env: e, items: items}
}

func (s *homeScreen) Init() tea.Cmd { return nil }

func (s *homeScreen) Title() string {
	if s.env.session != nil {
		return "Welcome, " + s.env.session.Username
	}
	return "Biiscoti"
}

func (s *homeScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		s.cursor = max(s.cursor-1, 0)
	case "down", "j":
		s.cursor = min(s.cursor+1, len(s.items)-1)
	case "enter":
		return navigate(s.items[s.cursor].route)
	}
	return nil
}

func (s *homeScreen) View() string {
	t := s.env.theme
	var b strings.Builder
	b.WriteString(t.Subtitle.Render("What are you shopping for today?"))
	b.WriteString("\n")
	for i, item := range s.items {
		line := fmt.Sprintf("%s  %s", item.icon, item.label)
		if i == s.cursor {
			b.WriteString(t.Selected.Render("> " + line))
		} else {
			b.WriteString(t.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// contactScreen shows the support line and hands it to the dialer.
type contactScreen struct {
	frame
	env    *env
	status string
	failed bool
}

func newContactScreen(e *env) *contactScreen {
	return &contactScreen{env: e}
}

func (s *contactScreen) Init() tea.Cmd { return nil }
func (s *contactScreen) Title() string { return "Contact Us" }

func (s *contactScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			s.status = "Opening dialer..."
			s.failed = false
			return dial(s.env.ctx, s.env.dialer, s.env.phone)
		}
	case dialedMsg:
		if msg.err != nil {
			s.status = "Could not open the dialer. Call " + msg.phone + " from your phone."
			s.failed = true
			return nil
		}
		s.status = "Calling " + msg.phone
	}
	return nil
}

func (s *contactScreen) View() string {
	t := s.env.theme
	out := t.Normal.Render("Questions about an order or a listing? Give us a call.") + "\n\n" +
		t.Card.Render(t.Bold.Render("📞 "+s.env.phone)) + "\n\n" +
		t.Muted.Render("Enter to call")
	if s.status != "" {
		style := t.StatusInfo
		if s.failed {
			style = t.StatusError
		}
		out += "\n" + style.Render(s.status)
	}
	return out
}
