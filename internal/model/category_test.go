package model

import (
	"testing"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "bakery", want: CategoryBakery},
		{input: "Restaurants", want: CategoryRestaurant},
		{input: " thrift ", want: CategoryThrift},
		{input: "hair", want: CategoryHair},
		{input: "groceries", wantErr: true},
		{input: "cafe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryInfo(t *testing.T) {
	seenDB := map[string]bool{}
	for _, c := range Categories() {
		info := c.Info()
		assert.True(t, c.Valid())
		assert.NotEmpty(t, info.Table, c)
		assert.False(t, seenDB[info.DBName], "duplicate db name %s", info.DBName)
		seenDB[info.DBName] = true
	}

	assert.Len(t, Categories(), 7)
	assert.Equal(t, "Amount", CategoryThrift.Info().AmountLabel)
	assert.Equal(t, "restaurant_db", CategoryRestaurant.Info().DBName)
	assert.False(t, Category("cafe").Valid())
}
