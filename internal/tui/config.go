package tui

import (
	"github.com/aphfiwiwi/biiscoti/internal/config"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Registry     *storage.Registry
	Accounts     *shop.Accounts
	Dialer       Dialer
	ContactPhone string
	StartRoute   nav.Route
	Width        int
	Height       int
	ShowHelp     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Dialer:       SystemDialer{},
		ContactPhone: config.DefaultContactPhone,
		StartRoute:   nav.Splash,
		Width:        80,
		Height:       24,
	}
}

// WithRegistry sets the store registry the screens read and write.
func WithRegistry(reg *storage.Registry) Option {
	return func(c *Config) {
		c.Registry = reg
	}
}

// WithAccounts sets the account service behind login and registration.
func WithAccounts(accounts *shop.Accounts) Option {
	return func(c *Config) {
		c.Accounts = accounts
	}
}

// WithDialer replaces the platform dialer.
func WithDialer(d Dialer) Option {
	return func(c *Config) {
		c.Dialer = d
	}
}

// WithContactPhone sets the number shown on the contact screen.
func WithContactPhone(phone string) Option {
	return func(c *Config) {
		if phone != "" {
			c.ContactPhone = phone
		}
	}
}

// WithStartRoute sets the first screen.
func WithStartRoute(r nav.Route) Option {
	return func(c *Config) {
		c.StartRoute = r
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
