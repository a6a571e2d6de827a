package viewmodel

import (
	"testing"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListingListView(t *testing.T) {
	view := NewListingListView(model.CategoryThrift.Info(), []model.Listing{
		{ID: 1, Name: "Denim jacket", Amount: 800, Description: "Size M"},
		{ID: 2, Name: "Scarf", Amount: 149.5, Contact: "0712000000"},
	}, true)

	assert.Equal(t, "Thrift", view.Title)
	assert.Equal(t, "Amount", view.AmountLabel)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "800.00", view.Items[0].Amount)
	assert.Equal(t, "149.50", view.Items[1].Amount)
	assert.Equal(t, int64(2), view.Items[1].ID)
	assert.Equal(t, "0712000000", view.Items[1].Contact)
}

func TestListingListView_EmptyMessage(t *testing.T) {
	tests := []struct {
		name string
		want string
		view ListingListView
	}{
		{
			name: "not loaded",
			view: ListingListView{},
			want: "Loading...",
		},
		{
			name: "loaded without rows",
			view: ListingListView{Loaded: true},
			want: "Nothing listed yet",
		},
		{
			name: "filtered without rows",
			view: ListingListView{Loaded: true, Query: "cake"},
			want: "No matches for \"cake\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.view.IsEmpty())
			assert.Equal(t, tt.want, tt.view.EmptyMessage())
		})
	}
}

func TestListingListView_HasFilter(t *testing.T) {
	assert.False(t, ListingListView{}.HasFilter())
	assert.True(t, ListingListView{Query: "x"}.HasFilter())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{amount: 0, want: "0.00"},
		{amount: 20, want: "20.00"},
		{amount: 1.005, want: "1.00"},
		{amount: -3.5, want: "-3.50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}
