package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/domain"
)

func setupTestStore(t *testing.T) string {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "catalog.db") + "?mode=rwc"

	conn, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(StoreSchema)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO videos (id, uri, title, position) VALUES
		(5, 'https://cdn.example.com/e.mp4', 'Fifth', 2),
		(2, 'https://cdn.example.com/b.mp4', '', 1),
		(9, 'https://cdn.example.com/i.mp4', 'Ninth', 1)`)
	require.NoError(t, err)
	return dsn
}

func TestStoreSource_Load(t *testing.T) {
	dsn := setupTestStore(t)
	src := NewStoreSource(dsn)
	assert.Equal(t, "store:"+dsn, src.String())

	videos, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.VideoItem{
		{ID: 2, URI: "https://cdn.example.com/b.mp4"},
		{ID: 9, URI: "https://cdn.example.com/i.mp4", Title: "Ninth"},
		{ID: 5, URI: "https://cdn.example.com/e.mp4", Title: "Fifth"},
	}, videos)
}

func TestStoreSource_MissingTable(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "empty.db") + "?mode=rwc"
	_, err := NewStoreSource(dsn).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "select videos")
}

func TestStoreSource_WithLoader(t *testing.T) {
	dsn := setupTestStore(t)
	videos, err := NewLoader(2, NewStoreSource(dsn), Static{{URI: "https://cdn.example.com/extra.mp4"}}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 4)
	assert.Equal(t, int64(10), videos[3].ID)
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLockError(errors.New("database table is locked")))
	assert.False(t, isLockError(errors.New("no such table: videos")))
}

func TestCriticalError(t *testing.T) {
	inner := errors.New("inner")
	err := error(&criticalError{err: inner})
	assert.ErrorIs(t, err, errCritical)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "inner", err.Error())
}
