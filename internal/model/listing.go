package model

// Listing is a single item or service offered in a shop. ID 0 means the
// listing has not been stored yet.
type Listing struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Contact     string  `yaml:"contact,omitempty"`
	ID          int64   `yaml:"id,omitempty"`
	Amount      float64 `yaml:"amount"`
}

// IsNew reports whether the listing still needs an identity.
func (l Listing) IsNew() bool {
	return l.ID == 0
}
