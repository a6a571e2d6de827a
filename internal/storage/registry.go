package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
)

// Database file names for the non-category stores.
const (
	ProfileDBName     = "user_profile_db"
	CredentialsDBName = "user_db"
)

// Registry owns every table database of the application. It is created
// once at startup and handed to whatever needs a store; each database is
// opened the first time it is requested.
type Registry struct {
	listings    map[model.Category]*Table[model.Listing]
	profiles    *Table[model.Profile]
	credentials *Table[model.Credential]
	dir         string
	opened      []func() error
	mu          sync.Mutex
	closed      bool
}

// NewRegistry creates a registry whose databases live under dir.
func NewRegistry(dir string) (*Registry, error) {
	if err := validateString(dir, "dir"); err != nil {
		return nil, err
	}
	return &Registry{
		dir:      dir,
		listings: make(map[model.Category]*Table[model.Listing]),
	}, nil
}

// Dir returns the data directory.
func (r *Registry) Dir() string {
	return r.dir
}

// Listings returns the table for a shop category.
func (r *Registry) Listings(ctx context.Context, c model.Category) (*Table[model.Listing], error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if t, ok := r.listings[c]; ok {
		return t, nil
	}

	info := c.Info()
	t, err := OpenTable(ctx, filepath.Join(r.dir, info.DBName), ListingSchema(info.Table))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", c, err)
	}

	r.listings[c] = t
	r.opened = append(r.opened, t.Close)
	slog.Debug("opened category store", "category", c, "path", t.dbPath)
	return t, nil
}

// Profiles returns the user profile table.
func (r *Registry) Profiles(ctx context.Context) (*Table[model.Profile], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if r.profiles == nil {
		t, err := OpenTable(ctx, filepath.Join(r.dir, ProfileDBName), ProfileSchema())
		if err != nil {
			return nil, fmt.Errorf("failed to open profile store: %w", err)
		}
		r.profiles = t
		r.opened = append(r.opened, t.Close)
	}
	return r.profiles, nil
}

// Credentials returns the shared account table.
func (r *Registry) Credentials(ctx context.Context) (*Table[model.Credential], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if r.credentials == nil {
		t, err := OpenTable(ctx, filepath.Join(r.dir, CredentialsDBName), CredentialSchema())
		if err != nil {
			return nil, fmt.Errorf("failed to open credential store: %w", err)
		}
		r.credentials = t
		r.opened = append(r.opened, t.Close)
	}
	return r.credentials, nil
}

// OpenAll opens every store up front, applying migrations.
func (r *Registry) OpenAll(ctx context.Context) error {
	for _, c := range model.Categories() {
		if _, err := r.Listings(ctx, c); err != nil {
			return err
		}
	}
	if _, err := r.Profiles(ctx); err != nil {
		return err
	}
	_, err := r.Credentials(ctx)
	return err
}

// Close closes every database opened so far. Later requests fail with ErrClosed.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	for _, closeFn := range r.opened {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	r.opened = nil
	return errors.Join(errs...)
}
