package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cropdoctor/internal/models"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeededMarketItems(t *testing.T) {
	db := newTestDB(t)

	crops, err := db.ListMarketItems(context.Background(), models.KindCrop)
	require.NoError(t, err)
	require.Len(t, crops, 3)
	assert.Equal(t, "Fresh Tomatoes", crops[0].Name)
	assert.Equal(t, "25", crops[0].Price)
	assert.Equal(t, "Nashik Mandi", crops[0].Location)
	for _, item := range crops {
		assert.Equal(t, models.KindCrop, item.Kind)
	}

	equipment, err := db.ListMarketItems(context.Background(), models.KindEquipment)
	require.NoError(t, err)
	require.Len(t, equipment, 2)
	assert.Equal(t, "John Deere Tractor", equipment[0].Name)
	assert.Equal(t, "per hour", equipment[0].Unit)
}

// Empty results must marshal as [] rather than null for websocket pushes.
func TestEmptyListsAreNonNil(t *testing.T) {
	db := newTestDB(t)
	_, err := db.db.Exec("DELETE FROM market_items; DELETE FROM posts")
	require.NoError(t, err)

	items, err := db.ListMarketItems(context.Background(), models.KindCrop)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	posts, err := db.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestSeededPosts(t *testing.T) {
	db := newTestDB(t)

	posts, err := db.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "Ramesh Kumar", posts[0].Author)
	assert.Equal(t, "Expert Farmer", posts[0].Role)
	assert.Equal(t, 124, posts[0].Likes)
	assert.NotEmpty(t, posts[0].Image)

	assert.Equal(t, "Anita Desai", posts[1].Author)
	assert.Empty(t, posts[1].Image)
}

func TestReopenDoesNotDuplicateSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")

	db, err := NewSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewSQLiteDB(path)
	require.NoError(t, err)
	defer db.Close()

	crops, err := db.ListMarketItems(context.Background(), models.KindCrop)
	require.NoError(t, err)
	assert.Len(t, crops, 3)
}
