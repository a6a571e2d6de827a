package tui

import (
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/tui/components"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchScreen filters one shop by name as the user types. Tab moves to
// the next shop.
type searchScreen struct {
	frame
	env      *env
	search   *shop.Search[model.Listing]
	status   viewmodel.StatusView
	input    textinput.Model
	table    components.ListingTableModel
	category model.Category
}

func newSearchScreen(e *env) (*searchScreen, error) {
	if e.registry == nil {
		return nil, errNoRegistry
	}

	input := textinput.New()
	input.Placeholder = "Search by name..."
	input.CharLimit = 50
	input.Focus()

	s := &searchScreen{env: e, input: input}
	if err := s.open(model.CategoryRestaurant); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *searchScreen) open(c model.Category) error {
	store, err := s.env.registry.Listings(s.env.ctx, c)
	if err != nil {
		return err
	}
	if s.search != nil {
		s.search.Close()
	}
	s.category = c
	s.search = shop.NewSearch[model.Listing](s.env.ctx, store)
	s.search.SetQuery(s.input.Value())
	s.table = components.NewListingTable(c.Info().AmountLabel, s.env.theme, true)
	s.table.SetSize(s.width, s.height-4)
	return nil
}

func (s *searchScreen) Init() tea.Cmd {
	return waitForUpdate(s, s.search.Updates())
}

func (s *searchScreen) Title() string      { return "Search " + s.category.Info().Title }
func (s *searchScreen) CapturesText() bool { return true }

func (s *searchScreen) SetSize(width, height int) {
	s.frame.SetSize(width, height)
	s.input.Width = max(width-4, 10)
	s.table.SetSize(width, height-4)
}

func (s *searchScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshMsg:
		if msg.target != s || msg.source != s.search.Updates() || !msg.ok {
			return nil
		}
		s.refresh()
		return waitForUpdate(s, s.search.Updates())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.env.keymap.NextItem):
			return s.nextCategory()
		case key.Matches(msg, s.env.keymap.Up, s.env.keymap.Down):
			var cmd tea.Cmd
			s.table, cmd = s.table.Update(msg)
			return cmd
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.search.SetQuery(strings.TrimSpace(s.input.Value()))
		s.refresh()
		return cmd
	}
	return nil
}

func (s *searchScreen) refresh() {
	query, results := s.search.Results()
	view := viewmodel.NewListingListView(s.category.Info(), results, results != nil)
	view.Query = query
	s.table.SetView(view)
}

func (s *searchScreen) nextCategory() tea.Cmd {
	cats := model.Categories()
	next := cats[0]
	for i, c := range cats {
		if c == s.category {
			next = cats[(i+1)%len(cats)]
			break
		}
	}
	if err := s.open(next); err != nil {
		s.status = viewmodel.Failure(err)
		return nil
	}
	s.refresh()
	return waitForUpdate(s, s.search.Updates())
}

func (s *searchScreen) View() string {
	t := s.env.theme
	return t.FocusedField.Render(s.input.View()) + "\n" +
		t.Muted.Render("Tab: next shop") + "\n" +
		s.table.View() + "\n" +
		renderStatus(t, s.status)
}

// Close cancels the live query.
func (s *searchScreen) Close() error {
	s.search.Close()
	return nil
}
