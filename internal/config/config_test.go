package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("BIISCOTI_TEST_DIR", "/srv/shops")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/data", want: filepath.Join(home, "data")},
		{name: "env var", in: "$BIISCOTI_TEST_DIR/db", want: "/srv/shops/db"},
		{name: "plain", in: "/tmp/x", want: "/tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultContactPhone, cfg.Contact.Phone)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotContains(t, cfg.String(), cfg.Auth.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "empty secret", key: "auth.secret", value: "", wantErr: common.ErrMissingConfig},
		{name: "bad ttl", key: "auth.session_ttl", value: "-1h", wantErr: common.ErrInvalidConfig},
		{name: "bad level", key: "logging.level", value: "chatty", wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
