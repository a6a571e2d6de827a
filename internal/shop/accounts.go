package shop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/auth"
	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
)

// CredentialStore is the access layer behind Accounts.
type CredentialStore interface {
	InsertOrReplace(ctx context.Context, rec model.Credential) (model.Credential, error)
	FindBy(ctx context.Context, column string, value any) (*model.Credential, error)
}

// Accounts registers users and signs them in.
type Accounts struct {
	store  CredentialStore
	tokens *auth.TokenService
}

// NewAccounts creates an account service.
func NewAccounts(store CredentialStore, tokens *auth.TokenService) *Accounts {
	return &Accounts{store: store, tokens: tokens}
}

// Register creates an account from form. A taken username yields
// common.ErrDuplicateEntry.
func (a *Accounts) Register(ctx context.Context, form RegisterForm) (model.Credential, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	if err := form.validate(); err != nil {
		return model.Credential{}, err
	}

	existing, err := a.store.FindBy(ctx, "username", form.Username)
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to look up username: %w", err)
	}
	if existing != nil {
		return model.Credential{}, common.NewUserError("that username is taken", common.ErrDuplicateEntry)
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		return model.Credential{}, err
	}

	role := form.Role
	if role == "" {
		role = model.RoleBuyer
	}

	cred, err := a.store.InsertOrReplace(ctx, model.Credential{
		Username:   form.Username,
		Email:      form.Email,
		SecretHash: hash,
		Role:       role,
	})
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to register %q: %w", form.Username, err)
	}

	slog.Info("account registered", "username", cred.Username, "role", cred.Role)
	return cred, nil
}

// Login checks the password and opens a session.
func (a *Accounts) Login(ctx context.Context, username, password string) (auth.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return auth.Session{}, common.NewUserError("enter a username and password", common.ErrInvalidCredentials)
	}

	cred, err := a.store.FindBy(ctx, "username", username)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to look up username: %w", err)
	}
	if cred == nil {
		return auth.Session{}, common.NewUserError("wrong username or password", common.ErrInvalidCredentials)
	}

	if err := auth.CheckPassword(cred.SecretHash, password); err != nil {
		return auth.Session{}, common.NewUserError("wrong username or password", err)
	}

	return a.tokens.Issue(*cred)
}

// Resume validates a previously issued session token.
func (a *Accounts) Resume(token string) (auth.Session, error) {
	return a.tokens.Parse(token)
}
