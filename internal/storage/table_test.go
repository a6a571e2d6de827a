package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// createTestTable opens a listing table in a temp directory.
func createTestTable(t *testing.T) *Table[model.Listing] {
	t.Helper()
	table, err := OpenTable(context.Background(), filepath.Join(t.TempDir(), "horticulture_db"), ListingSchema("horticulture_services"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = table.Close() })
	return table
}

// nextSnapshot waits for the next emission of w.
func nextSnapshot[T any](t *testing.T, w *Watch[T]) []T {
	t.Helper()
	select {
	case snap, ok := <-w.Updates():
		require.True(t, ok, "watch ended unexpectedly: %v", w.Err())
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func names(listings []model.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Name
	}
	return out
}

func TestTable_InsertAssignsID(t *testing.T) {
	table := createTestTable(t)
	ctx := context.Background()

	saved, err := table.InsertOrReplace(ctx, model.Listing{Name: "Lawn Mowing", Amount: 20.0, Description: "Weekly cut"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	all, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, saved, all[0])
	assert.Equal(t, 20.0, all[0].Amount)
}

func TestTable_ReplaceOnConflict(t *testing.T) {
	table := createTestTable(t)
	ctx := context.Background()

	saved, err := table.InsertOrReplace(ctx, model.Listing{Name: "Hedge trim", Amount: 15, Description: "small", Contact: "0700"})
	require.NoError(t, err)

	replaced := model.Listing{ID: saved.ID, Name: "Hedge trim XL", Amount: 30, Description: "large"}
	_, err = table.InsertOrReplace(ctx, replaced)
	require.NoError(t, err)

	count, err := table.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := table.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, replaced, *got, "every column is overwritten, including the cleared contact")
}

func TestTable_InsertWithExplicitIDCreatesRow(t *testing.T) {
	table := createTestTable(t)
	ctx := context.Background()

	_, err := table.InsertOrReplace(ctx, model.Listing{ID: 42, Name: "Seedlings", Amount: 3})
	require.NoError(t, err)

	got, err := table.Get(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Seedlings", got.Name)
}

func TestTable_Delete(t *testing.T) {
	tests := []struct {
		name      string
		deleteID  func(ids []int64) int64
		wantCount int
	}{
		{
			name:      "existing row",
			deleteID:  func(ids []int64) int64 { return ids[1] },
			wantCount: 2,
		},
		{
			name:      "missing row is a no-op",
			deleteID:  func(_ []int64) int64 { return 999 },
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := createTestTable(t)
			ctx := context.Background()

			var ids []int64
			for _, name := range []string{"Pruning", "Planting", "Watering"} {
				saved, err := table.InsertOrReplace(ctx, model.Listing{Name: name, Amount: 10})
				require.NoError(t, err)
				ids = append(ids, saved.ID)
			}

			require.NoError(t, table.Delete(ctx, model.Listing{ID: tt.deleteID(ids)}))

			count, err := table.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestTable_GetMissing(t *testing.T) {
	table := createTestTable(t)

	got, err := table.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, got)

	first, err := table.First(context.Background())
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestTable_ListByName(t *testing.T) {
	table := createTestTable(t)
	ctx := context.Background()

	for _, name := range []string{"Lawn Mowing", "Tree Planting", "lawn edging"} {
		_, err := table.InsertOrReplace(ctx, model.Listing{Name: name, Amount: 5})
		require.NoError(t, err)
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{pattern: "", want: []string{"Lawn Mowing", "Tree Planting", "lawn edging"}},
		{pattern: "Lawn", want: []string{"Lawn Mowing", "lawn edging"}},
		{pattern: "Plant", want: []string{"Tree Planting"}},
		{pattern: "cactus", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := table.ListByName(ctx, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestTable_FindBy(t *testing.T) {
	table := createTestTable(t)
	ctx := context.Background()

	_, err := table.InsertOrReplace(ctx, model.Listing{Name: "Compost", Amount: 8})
	require.NoError(t, err)

	got, err := table.FindBy(ctx, "name", "Compost")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 8.0, got.Amount)

	_, err = table.FindBy(ctx, "name; DROP TABLE horticulture_services", "x")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestTable_SelectAllEmitsOnMutation(t *testing.T) {
	table := createTestTable(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := table.SelectAll(ctx)
	assert.Empty(t, nextSnapshot(t, w))

	saved, err := table.InsertOrReplace(context.Background(), model.Listing{Name: "Lawn Mowing", Amount: 20})
	require.NoError(t, err)

	snap := nextSnapshot(t, w)
	require.Len(t, snap, 1)
	assert.Equal(t, saved.ID, snap[0].ID)

	require.NoError(t, table.Delete(context.Background(), saved))
	assert.Empty(t, nextSnapshot(t, w))
}

func TestTable_SelectByNameFilters(t *testing.T) {
	table := createTestTable(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := table.SelectByName(ctx, "Mow")
	assert.Empty(t, nextSnapshot(t, w))

	_, err := table.InsertOrReplace(context.Background(), model.Listing{Name: "Lawn Mowing", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lawn Mowing"}, names(nextSnapshot(t, w)))

	_, err = table.InsertOrReplace(context.Background(), model.Listing{Name: "Weeding", Amount: 12})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lawn Mowing"}, names(nextSnapshot(t, w)))
}

func TestTable_SlowConsumerSeesLatest(t *testing.T) {
	table := createTestTable(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := table.SelectAll(ctx)
	for i := 0; i < 5; i++ {
		_, err := table.InsertOrReplace(context.Background(), model.Listing{Name: "Bulb", Amount: float64(i)})
		require.NoError(t, err)
	}

	// Whatever was conflated, the sequence settles on the full table.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-w.Updates():
			if len(snap) == 5 {
				return
			}
		case <-deadline:
			t.Fatal("never observed the final snapshot")
		}
	}
}

func TestTable_WatchCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	table, err := OpenTable(context.Background(), filepath.Join(t.TempDir(), "thrift_db"), ListingSchema("thrift"))
	require.NoError(t, err)
	defer func() { _ = table.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	w := table.SelectAll(ctx)
	nextSnapshot(t, w)
	cancel()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	_, ok := <-w.Updates()
	assert.False(t, ok)
	assert.NoError(t, w.Err())
}

func TestTable_CloseEndsWatches(t *testing.T) {
	table, err := OpenTable(context.Background(), filepath.Join(t.TempDir(), "hair_db"), ListingSchema("hair_services"))
	require.NoError(t, err)

	w := table.SelectAll(context.Background())
	nextSnapshot(t, w)
	require.NoError(t, table.Close())

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after close")
	}
}

func TestTable_NilContext(t *testing.T) {
	table := createTestTable(t)

	//nolint:staticcheck // deliberately passing nil
	_, err := table.InsertOrReplace(nil, model.Listing{Name: "x"})
	assert.ErrorIs(t, err, ErrNilContext)

	//nolint:staticcheck // deliberately passing nil
	w := table.SelectAll(nil)
	<-w.Done()
	assert.ErrorIs(t, w.Err(), ErrNilContext)
}

func TestCredentials_DuplicateUsername(t *testing.T) {
	table, err := OpenTable(context.Background(), filepath.Join(t.TempDir(), CredentialsDBName), CredentialSchema())
	require.NoError(t, err)
	t.Cleanup(func() { _ = table.Close() })
	ctx := context.Background()

	_, err = table.InsertOrReplace(ctx, model.Credential{Username: "amina", SecretHash: "h"})
	require.NoError(t, err)

	_, err = table.InsertOrReplace(ctx, model.Credential{Username: "amina", SecretHash: "h2"})
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	got, err := table.FindBy(ctx, "username", "amina")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.RoleBuyer, got.Role)
}
