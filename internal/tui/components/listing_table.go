package components

import (
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListingTableModel renders a shop's listings as a scrollable table.
type ListingTableModel struct {
	theme themes.Theme
	view  viewmodel.ListingListView
	table table.Model
	width int
}

// NewListingTable creates an empty table.
func NewListingTable(amountLabel string, theme themes.Theme, focused bool) ListingTableModel {
	t := table.New(
		table.WithColumns(listingColumns(amountLabel, 80)),
		table.WithFocused(focused),
		table.WithHeight(10),
	)

	// Apply theme
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return ListingTableModel{
		theme: theme,
		table: t,
		width: 80,
		view:  viewmodel.ListingListView{AmountLabel: amountLabel},
	}
}

func listingColumns(amountLabel string, width int) []table.Column {
	nameW := max(width*3/10, 12)
	amountW := 10
	contactW := 14
	descW := max(width-nameW-amountW-contactW-8, 10)
	return []table.Column{
		{Title: "Name", Width: nameW},
		{Title: amountLabel, Width: amountW},
		{Title: "Description", Width: descW},
		{Title: "Contact", Width: contactW},
	}
}

// SetView replaces the rows, keeping the cursor in range.
func (m *ListingTableModel) SetView(view viewmodel.ListingListView) {
	m.view = view
	rows := make([]table.Row, len(view.Items))
	for i, item := range view.Items {
		rows[i] = table.Row{item.Name, item.Amount, item.Description, item.Contact}
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Selected returns the listing under the cursor.
func (m ListingTableModel) Selected() (viewmodel.ListingItemView, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.view.Items) {
		return viewmodel.ListingItemView{}, false
	}
	return m.view.Items[c], true
}

// SetSize fits the table to the available space.
func (m *ListingTableModel) SetSize(width, height int) {
	m.width = width
	m.table.SetColumns(listingColumns(m.view.AmountLabel, width))
	m.table.SetHeight(max(height, 3))
}

// Focus gives the table keyboard control.
func (m *ListingTableModel) Focus() { m.table.Focus() }

// Blur releases keyboard control.
func (m *ListingTableModel) Blur() { m.table.Blur() }

// Update handles messages.
func (m ListingTableModel) Update(msg tea.Msg) (ListingTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, or a placeholder when there is nothing to show.
func (m ListingTableModel) View() string {
	if m.view.IsEmpty() {
		return m.theme.Muted.Render(m.view.EmptyMessage())
	}
	return m.table.View()
}
