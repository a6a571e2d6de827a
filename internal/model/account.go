package model

// Role distinguishes shoppers from shop administrators.
type Role string

// Account roles.
const (
	RoleBuyer Role = "buyer"
	RoleAdmin Role = "admin"
)

// Credential is a registered account. SecretHash holds a bcrypt hash, never
// the password itself.
type Credential struct {
	Username   string
	Email      string
	SecretHash string
	Role       Role
	ID         int64
}

// IsAdmin reports whether the account may manage listings.
func (c Credential) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Profile is the locally stored user profile.
type Profile struct {
	Name  string
	Email string
	Phone string
	ID    int64
}
