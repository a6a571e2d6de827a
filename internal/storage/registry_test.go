package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LazyPerCategoryFiles(t *testing.T) {
	dir := t.TempDir()
	reg, err := NewRegistry(dir)
	require.NoError(t, err)
	defer reg.Close()
	ctx := context.Background()

	_, err = os.Stat(filepath.Join(dir, "bakery_db"))
	assert.True(t, os.IsNotExist(err), "nothing is opened before first access")

	bakery, err := reg.Listings(ctx, model.CategoryBakery)
	require.NoError(t, err)
	again, err := reg.Listings(ctx, model.CategoryBakery)
	require.NoError(t, err)
	assert.Same(t, bakery, again)
	assert.Equal(t, "bakery_items", bakery.Name())

	_, err = os.Stat(filepath.Join(dir, "bakery_db"))
	assert.NoError(t, err)
}

func TestRegistry_CategoriesAreIsolated(t *testing.T) {
	reg, err := NewRegistry(t.TempDir())
	require.NoError(t, err)
	defer reg.Close()
	ctx := context.Background()

	bakery, err := reg.Listings(ctx, model.CategoryBakery)
	require.NoError(t, err)
	restaurants, err := reg.Listings(ctx, model.CategoryRestaurant)
	require.NoError(t, err)

	_, err = bakery.InsertOrReplace(ctx, model.Listing{Name: "Croissant", Amount: 1.5})
	require.NoError(t, err)

	count, err := restaurants.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegistry_UnknownCategory(t *testing.T) {
	reg, err := NewRegistry(t.TempDir())
	require.NoError(t, err)
	defer reg.Close()

	_, err = reg.Listings(context.Background(), model.Category("cafe"))
	assert.ErrorIs(t, err, common.ErrUnknownCategory)
}

func TestRegistry_OpenAllAndClose(t *testing.T) {
	dir := t.TempDir()
	reg, err := NewRegistry(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, reg.OpenAll(ctx))
	for _, name := range []string{"restaurant_db", "thrift_db", "grocery_db", ProfileDBName, CredentialsDBName} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	require.NoError(t, reg.Close())
	require.NoError(t, reg.Close())

	_, err = reg.Profiles(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNewRegistry_EmptyDir(t *testing.T) {
	_, err := NewRegistry("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
