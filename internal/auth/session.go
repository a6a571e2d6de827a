package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is a logged-in account.
type Session struct {
	ExpiresAt time.Time
	Username  string
	Role      model.Role
	Token     string
	UserID    int64
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens.
type TokenService struct {
	now       func() time.Time
	secretKey []byte
	expiresIn time.Duration
}

// NewTokenService creates a token service using an HS256 secret.
func NewTokenService(secret string, expiresIn time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: session secret", common.ErrMissingConfig)
	}
	if expiresIn <= 0 {
		return nil, fmt.Errorf("%w: session lifetime must be positive", common.ErrInvalidConfig)
	}
	return &TokenService{secretKey: []byte(secret), expiresIn: expiresIn, now: time.Now}, nil
}

// Issue creates a session for cred.
func (s *TokenService) Issue(cred model.Credential) (Session, error) {
	now := s.now()
	expTime := now.Add(s.expiresIn)

	claims := sessionClaims{
		Username: cred.Username,
		Role:     string(cred.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(cred.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session: %w", err)
	}

	slog.Info("session issued", "username", cred.Username, "expires_at", expTime.Format(time.DateTime))
	return Session{
		UserID:    cred.ID,
		Username:  cred.Username,
		Role:      cred.Role,
		Token:     token,
		ExpiresAt: expTime,
	}, nil
}

// Parse validates a token and returns the session it carries.
func (s *TokenService) Parse(token string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", common.ErrInvalidSession, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.Username == "" {
		return Session{}, common.ErrInvalidSession
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Session{}, fmt.Errorf("%w: bad subject", common.ErrInvalidSession)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return Session{
		UserID:    userID,
		Username:  claims.Username,
		Role:      model.Role(claims.Role),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
