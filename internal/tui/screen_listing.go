package tui

import (
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/tui/components"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const listingFormID = "listing"

// listingScreen shows one shop. The admin variant adds a form and
// deletes the selected row on Ctrl+D.
type listingScreen struct {
	frame
	env     *env
	catalog *shop.Catalog[model.Listing]
	info    model.CategoryInfo
	status  viewmodel.StatusView
	table   components.ListingTableModel
	form    components.FormModel
	admin   bool
}

func newListingScreen(e *env, c model.Category, admin bool) (*listingScreen, error) {
	if e.registry == nil {
		return nil, errNoRegistry
	}
	store, err := e.registry.Listings(e.ctx, c)
	if err != nil {
		return nil, err
	}

	info := c.Info()
	s := &listingScreen{
		env:     e,
		info:    info,
		admin:   admin,
		catalog: shop.NewCatalog[model.Listing](e.ctx, info.Title, store),
		table:   components.NewListingTable(info.AmountLabel, e.theme, true),
	}
	if admin {
		s.form = components.NewForm(listingFormID, "Add "+info.Title, e.theme,
			components.FieldSpec{Label: "Name", CharLimit: 80},
			components.FieldSpec{Label: info.AmountLabel, Placeholder: "0.00", CharLimit: 16},
			components.FieldSpec{Label: "Description", CharLimit: 200},
			components.FieldSpec{Label: "Contact", Placeholder: "optional", CharLimit: 32},
		)
	}
	return s, nil
}

func (s *listingScreen) Init() tea.Cmd {
	return waitForUpdate(s, s.catalog.Updates())
}

func (s *listingScreen) Title() string {
	if s.admin {
		return "Admin: Manage " + s.info.Title
	}
	return "Available " + s.info.Title
}

func (s *listingScreen) CapturesText() bool { return s.admin }

func (s *listingScreen) SetSize(width, height int) {
	s.frame.SetSize(width, height)
	tableHeight := height - 2
	if s.admin {
		s.form.SetWidth(min(width, 60))
		tableHeight = height - 16
	}
	s.table.SetSize(width, tableHeight)
}

func (s *listingScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshMsg:
		if msg.target != s {
			return nil
		}
		if err := s.catalog.LastErr(); err != nil {
			s.status = viewmodel.Failure(err)
		}
		if !msg.ok {
			return nil
		}
		snap, loaded := s.catalog.Snapshot()
		s.table.SetView(viewmodel.NewListingListView(s.info, snap, loaded))
		return waitForUpdate(s, s.catalog.Updates())

	case components.FormSubmittedMsg:
		if msg.ID != listingFormID {
			return nil
		}
		// invalid input is dropped without a message
		if s.catalog.Submit(shop.ListingForm{
			Name:        msg.Values[0],
			Amount:      msg.Values[1],
			Description: msg.Values[2],
			Contact:     msg.Values[3],
		}) {
			s.form.Reset()
		}
		return nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *listingScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	if !s.admin {
		if key.Matches(msg, s.env.keymap.Admin) {
			return s.openAdmin()
		}
		s.table, cmd = s.table.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, s.env.keymap.Delete):
		if sel, ok := s.table.Selected(); ok {
			s.catalog.Remove(model.Listing{ID: sel.ID})
		}
		return nil
	case key.Matches(msg, s.env.keymap.Up, s.env.keymap.Down):
		s.table, cmd = s.table.Update(msg)
		return cmd
	}
	s.form, cmd = s.form.Update(msg)
	return cmd
}

func (s *listingScreen) openAdmin() tea.Cmd {
	route, ok := nav.AdminFor(s.info.Category)
	if !ok {
		return nil
	}
	if !s.env.isAdmin() {
		s.status = viewmodel.Info("Only admins can manage listings")
		return nil
	}
	return navigate(route)
}

func (s *listingScreen) View() string {
	t := s.env.theme
	out := ""
	if s.admin {
		out = s.form.View() + "\n\n" + t.Title.Render("All "+s.info.Title) + "\n"
	}
	out += s.table.View()
	if !s.admin && s.env.isAdmin() {
		if _, ok := nav.AdminFor(s.info.Category); ok {
			out += "\n" + t.Muted.Render("Ctrl+A to manage listings")
		}
	}
	return out + "\n" + renderStatus(t, s.status)
}

// Close stops observing the shop and waits for queued writes.
func (s *listingScreen) Close() error {
	return s.catalog.Close()
}
