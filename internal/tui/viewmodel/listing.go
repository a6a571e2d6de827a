package viewmodel

import (
	"strconv"

	"github.com/aphfiwiwi/biiscoti/internal/model"
)

// ListingListView represents one shop's list of listings.
type ListingListView struct {
	Title       string
	AmountLabel string
	Query       string
	Items       []ListingItemView
	Loaded      bool
}

// ListingItemView represents a single listing row.
type ListingItemView struct {
	Name        string
	Amount      string
	Description string
	Contact     string
	ID          int64
}

// NewListingListView builds the view for a category snapshot. A nil
// snapshot means nothing has been loaded yet.
func NewListingListView(info model.CategoryInfo, listings []model.Listing, loaded bool) ListingListView {
	items := make([]ListingItemView, len(listings))
	for i, l := range listings {
		items[i] = ListingItemView{
			ID:          l.ID,
			Name:        l.Name,
			Amount:      FormatAmount(l.Amount),
			Description: l.Description,
			Contact:     l.Contact,
		}
	}
	return ListingListView{
		Title:       info.Title,
		AmountLabel: info.AmountLabel,
		Items:       items,
		Loaded:      loaded,
	}
}

// IsEmpty returns true if there are no listings.
func (v ListingListView) IsEmpty() bool {
	return len(v.Items) == 0
}

// HasFilter returns true if a search query is applied.
func (v ListingListView) HasFilter() bool {
	return v.Query != ""
}

// EmptyMessage is what to show in place of an empty list.
func (v ListingListView) EmptyMessage() string {
	switch {
	case !v.Loaded:
		return "Loading..."
	case v.HasFilter():
		return "No matches for \"" + v.Query + "\""
	default:
		return "Nothing listed yet"
	}
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
