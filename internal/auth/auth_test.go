package auth

import (
	"testing"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret!"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), common.ErrInvalidCredentials)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	session, err := svc.Issue(model.Credential{ID: 7, Username: "wanjiru", Role: model.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	parsed, err := svc.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "wanjiru", parsed.Username)
	assert.Equal(t, model.RoleAdmin, parsed.Role)
	assert.WithinDuration(t, session.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestTokenService_Rejects(t *testing.T) {
	svc, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	session, err := svc.Issue(model.Credential{ID: 1, Username: "otieno"})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later, err := NewTokenService("test-secret", time.Hour)
		require.NoError(t, err)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = later.Parse(session.Token)
		assert.ErrorIs(t, err, common.ErrInvalidSession)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenService("other-secret", time.Hour)
		require.NoError(t, err)
		_, err = other.Parse(session.Token)
		assert.ErrorIs(t, err, common.ErrInvalidSession)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Parse("not-a-token")
		assert.ErrorIs(t, err, common.ErrInvalidSession)
	})
}

func TestNewTokenService_Config(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = NewTokenService("x", 0)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
