package storage

import (
	"fmt"
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/model"
)

// RowScanner is the subset of *sql.Row and *sql.Rows used by schemas.
type RowScanner interface {
	Scan(dest ...any) error
}

// Column is a non-key column of a table.
type Column struct {
	Name string
	Type string
}

// Schema describes how a record type maps onto a single table whose
// primary key is an auto-assigned integer "id" column.
type Schema[T any] struct {
	// Scan reads "id" followed by Columns, in order.
	Scan func(RowScanner) (T, error)
	// Values returns the Columns values of a record, in order.
	Values func(T) []any
	ID     func(T) int64
	WithID func(T, int64) T
	Table  string
	// NameColumn is the column matched by substring search.
	NameColumn string
	Columns    []Column
}

func (s Schema[T]) validate() error {
	if err := validateString(s.Table, "table"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: %s has no columns", ErrInvalidSchema, s.Table)
	}
	if s.Scan == nil || s.Values == nil || s.ID == nil || s.WithID == nil {
		return fmt.Errorf("%w: %s is missing accessors", ErrInvalidSchema, s.Table)
	}
	if s.NameColumn != "" && !s.hasColumn(s.NameColumn) {
		return fmt.Errorf("%w: %s name column %q", ErrInvalidSchema, s.Table, s.NameColumn)
	}
	return nil
}

func (s Schema[T]) hasColumn(name string) bool {
	for _, c := range s.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s Schema[T]) columnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

func (s Schema[T]) createTableSQL() string {
	defs := make([]string, 0, len(s.Columns)+1)
	defs = append(defs, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	for _, c := range s.Columns {
		defs = append(defs, c.Name+" "+c.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", s.Table, strings.Join(defs, ",\n\t"))
}

func (s Schema[T]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(s.columnNames(), ", "), s.Table)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// ListingSchema maps model.Listing onto the given category table.
func ListingSchema(table string) Schema[model.Listing] {
	return Schema[model.Listing]{
		Table:      table,
		NameColumn: "name",
		Columns: []Column{
			{Name: "name", Type: "TEXT NOT NULL"},
			{Name: "amount", Type: "REAL NOT NULL"},
			{Name: "description", Type: "TEXT NOT NULL DEFAULT ''"},
			{Name: "contact", Type: "TEXT NOT NULL DEFAULT ''"},
		},
		Scan: func(row RowScanner) (model.Listing, error) {
			var l model.Listing
			err := row.Scan(&l.ID, &l.Name, &l.Amount, &l.Description, &l.Contact)
			return l, err
		},
		Values: func(l model.Listing) []any {
			return []any{l.Name, l.Amount, l.Description, l.Contact}
		},
		ID: func(l model.Listing) int64 { return l.ID },
		WithID: func(l model.Listing, id int64) model.Listing {
			l.ID = id
			return l
		},
	}
}

// ProfileSchema maps model.Profile onto the user_profiles table.
func ProfileSchema() Schema[model.Profile] {
	return Schema[model.Profile]{
		Table:      "user_profiles",
		NameColumn: "name",
		Columns: []Column{
			{Name: "name", Type: "TEXT NOT NULL"},
			{Name: "email", Type: "TEXT NOT NULL DEFAULT ''"},
			{Name: "phone_number", Type: "TEXT NOT NULL DEFAULT ''"},
		},
		Scan: func(row RowScanner) (model.Profile, error) {
			var p model.Profile
			err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone)
			return p, err
		},
		Values: func(p model.Profile) []any {
			return []any{p.Name, p.Email, p.Phone}
		},
		ID: func(p model.Profile) int64 { return p.ID },
		WithID: func(p model.Profile, id int64) model.Profile {
			p.ID = id
			return p
		},
	}
}

// CredentialSchema maps model.Credential onto the users table.
func CredentialSchema() Schema[model.Credential] {
	return Schema[model.Credential]{
		Table:      "users",
		NameColumn: "username",
		Columns: []Column{
			{Name: "username", Type: "TEXT NOT NULL UNIQUE"},
			{Name: "email", Type: "TEXT NOT NULL DEFAULT ''"},
			{Name: "secret_hash", Type: "TEXT NOT NULL"},
			{Name: "role", Type: "TEXT NOT NULL DEFAULT 'buyer'"},
		},
		Scan: func(row RowScanner) (model.Credential, error) {
			var c model.Credential
			var role string
			err := row.Scan(&c.ID, &c.Username, &c.Email, &c.SecretHash, &role)
			c.Role = model.Role(role)
			return c, err
		},
		Values: func(c model.Credential) []any {
			role := c.Role
			if role == "" {
				role = model.RoleBuyer
			}
			return []any{c.Username, c.Email, c.SecretHash, string(role)}
		},
		ID: func(c model.Credential) int64 { return c.ID },
		WithID: func(c model.Credential, id int64) model.Credential {
			c.ID = id
			return c
		},
	}
}
