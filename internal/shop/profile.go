package shop

import (
	"context"
	"log/slog"

	"github.com/aphfiwiwi/biiscoti/internal/model"
)

// ProfileHolder tracks the stored profile. Only the first row counts;
// saving replaces it in place.
type ProfileHolder struct {
	catalog *Catalog[model.Profile]
}

// NewProfileHolder starts observing store.
func NewProfileHolder(ctx context.Context, store Store[model.Profile]) *ProfileHolder {
	return &ProfileHolder{catalog: NewCatalog(ctx, "profile", store)}
}

// Current returns the stored profile, or false when none is saved or the
// first snapshot has not arrived.
func (h *ProfileHolder) Current() (model.Profile, bool) {
	snap, _ := h.catalog.Snapshot()
	if len(snap) == 0 {
		return model.Profile{}, false
	}
	return snap[0], true
}

// Save validates form and stores it in the background. A form without an
// ID takes over the current profile's row.
func (h *ProfileHolder) Save(form ProfileForm) error {
	if form.ID == 0 {
		if cur, ok := h.Current(); ok {
			form.ID = cur.ID
		}
	}
	profile, err := form.Parse()
	if err != nil {
		return err
	}
	slog.Debug("saving profile", "id", profile.ID)
	h.catalog.Add(profile)
	return nil
}

// Updates is signalled after every new snapshot.
func (h *ProfileHolder) Updates() <-chan struct{} {
	return h.catalog.Updates()
}

// LastErr returns the most recent storage failure.
func (h *ProfileHolder) LastErr() error {
	return h.catalog.LastErr()
}

// Flush waits for pending saves.
func (h *ProfileHolder) Flush(ctx context.Context) error {
	return h.catalog.Flush(ctx)
}

// Close stops observing and waits for pending saves.
func (h *ProfileHolder) Close() error {
	return h.catalog.Close()
}
