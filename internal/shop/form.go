package shop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/go-playground/validator/v10"
)

// Form is raw user input that can be turned into a record.
type Form[T any] interface {
	Parse() (T, error)
}

// ListingForm is the text entered on an admin screen.
type ListingForm struct {
	Name        string `validate:"notblank"`
	Amount      string `validate:"amount"`
	Description string
	Contact     string
}

// Parse validates the form and builds a new listing.
func (f ListingForm) Parse() (model.Listing, error) {
	if err := validate.Struct(f); err != nil {
		return model.Listing{}, fmt.Errorf("%w: %s", common.ErrInvalidListing, describe(err))
	}
	amount, _ := parseAmount(f.Amount)
	return model.Listing{
		Name:        strings.TrimSpace(f.Name),
		Amount:      amount,
		Description: strings.TrimSpace(f.Description),
		Contact:     strings.TrimSpace(f.Contact),
	}, nil
}

// ProfileForm is the text entered on the profile screen.
type ProfileForm struct {
	Name  string `validate:"notblank"`
	Email string `validate:"omitempty,email"`
	Phone string `validate:"omitempty,e164|numeric"`
	ID    int64
}

// Parse validates the form. The ID is carried through so an existing
// profile is replaced rather than duplicated.
func (f ProfileForm) Parse() (model.Profile, error) {
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	if err := validate.Struct(f); err != nil {
		return model.Profile{}, common.NewUserError("check your profile details", errors.New(describe(err)))
	}
	return model.Profile{
		ID:    f.ID,
		Name:  strings.TrimSpace(f.Name),
		Email: f.Email,
		Phone: f.Phone,
	}, nil
}

// RegisterForm is the registration screen input.
type RegisterForm struct {
	Username string `validate:"notblank,min=3,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"eqfield=Password"`
	Role     model.Role
}

func (f RegisterForm) validate() error {
	if err := validate.Struct(f); err != nil {
		return common.NewUserError("check your registration details", errors.New(describe(err)))
	}
	return nil
}

// describe flattens validator errors into "Field: tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
