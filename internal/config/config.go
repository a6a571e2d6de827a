package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/spf13/viper"
)

// DefaultContactPhone is the number the contact screen hands to the dialer.
const DefaultContactPhone = "0741462249"

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
	Data    DataConfig
	Contact ContactConfig
	Auth    AuthConfig
}

// DataConfig controls where the per-category databases live.
type DataConfig struct {
	Dir string
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// AuthConfig holds session signing settings.
type AuthConfig struct {
	Secret     string
	SessionTTL time.Duration
}

// ContactConfig holds the "contact us" settings.
type ContactConfig struct {
	Phone string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "$HOME/.local/share/biiscoti")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("auth.secret", "dev-secret-change-me")
	v.SetDefault("auth.session_ttl", 24*time.Hour)
	v.SetDefault("contact.phone", DefaultContactPhone)
}

// Load reads the typed configuration out of v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Data: DataConfig{
			Dir: ExpandPath(v.GetString("data.dir")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Auth: AuthConfig{
			Secret:     v.GetString("auth.secret"),
			SessionTTL: v.GetDuration("auth.session_ttl"),
		},
		Contact: ContactConfig{
			Phone: v.GetString("contact.phone"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail later and obscurely.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("%w: data.dir", common.ErrMissingConfig)
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("%w: auth.secret", common.ErrMissingConfig)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("%w: auth.session_ttl must be positive", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// String returns a printable form of the config with the secret masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Data: %s, Log: %s/%s, Auth: *** (masked) ***}", c.Data.Dir, c.Logging.Level, c.Logging.Format)
}
