// Package testutil provides test helpers for code that needs real stores.
package testutil

import (
	"context"
	"testing"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
)

// SetupRegistry creates a registry in a temporary directory and closes it
// when the test ends.
func SetupRegistry(t *testing.T) *storage.Registry {
	t.Helper()

	reg, err := storage.NewRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test registry: %v", err)
	}

	t.Cleanup(func() {
		_ = reg.Close()
	})

	return reg
}

// SetupListings returns the table for c, seeded with listings.
//
// Example:
//
//	table := testutil.SetupListings(t, reg, model.CategoryBakery,
//		model.Listing{Name: "Croissant", Amount: 1.5},
//	)
func SetupListings(t *testing.T, reg *storage.Registry, c model.Category, listings ...model.Listing) *storage.Table[model.Listing] {
	t.Helper()
	ctx := context.Background()

	table, err := reg.Listings(ctx, c)
	if err != nil {
		t.Fatalf("failed to open %s table: %v", c, err)
	}

	for _, l := range listings {
		if _, err := table.InsertOrReplace(ctx, l); err != nil {
			t.Fatalf("failed to seed listing %q: %v", l.Name, err)
		}
	}

	return table
}

// MustCount returns the row count of table or fails the test.
func MustCount[T any](t *testing.T, table *storage.Table[T]) int {
	t.Helper()
	count, err := table.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count %s: %v", table.Name(), err)
	}
	return count
}
