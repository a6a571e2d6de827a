package shop

import (
	"testing"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingForm_Parse(t *testing.T) {
	tests := []struct {
		name    string
		form    ListingForm
		want    model.Listing
		wantErr bool
	}{
		{
			name: "valid",
			form: ListingForm{Name: " Lawn Mowing ", Amount: "20", Description: "Weekly"},
			want: model.Listing{Name: "Lawn Mowing", Amount: 20, Description: "Weekly"},
		},
		{
			name: "decimal amount with contact",
			form: ListingForm{Name: "Mandazi", Amount: " 12.50", Contact: "0712 000000"},
			want: model.Listing{Name: "Mandazi", Amount: 12.5, Contact: "0712 000000"},
		},
		{name: "blank name", form: ListingForm{Name: "   ", Amount: "5"}, wantErr: true},
		{name: "non-numeric amount", form: ListingForm{Name: "Ring", Amount: "ten"}, wantErr: true},
		{name: "empty amount", form: ListingForm{Name: "Ring"}, wantErr: true},
		{name: "infinite amount", form: ListingForm{Name: "Ring", Amount: "Inf"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.Parse()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidListing)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileForm_Parse(t *testing.T) {
	got, err := ProfileForm{ID: 1, Name: "Amina", Email: "amina@example.com ", Phone: "0741462249"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, model.Profile{ID: 1, Name: "Amina", Email: "amina@example.com", Phone: "0741462249"}, got)

	_, err = ProfileForm{Name: "Amina", Email: "not-an-email"}.Parse()
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)

	_, err = ProfileForm{Name: " "}.Parse()
	assert.Error(t, err)
}

func TestRegisterForm_Validate(t *testing.T) {
	valid := RegisterForm{Username: "amina", Email: "a@example.com", Password: "secret1", Confirm: "secret1"}
	require.NoError(t, valid.validate())

	mismatch := valid
	mismatch.Confirm = "secret2"
	assert.Error(t, mismatch.validate())

	short := valid
	short.Password, short.Confirm = "abc", "abc"
	assert.Error(t, short.validate())
}
