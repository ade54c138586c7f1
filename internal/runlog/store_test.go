package runlog

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	started := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	run := Run{
		ID:              "run-1",
		ListID:          "imdb-top-250",
		ListName:        "IMDb Top 250",
		CollectionID:    "col-9",
		StartedAt:       started,
		FinishedAt:      started.Add(42 * time.Second),
		Matched:         240,
		Unmatched:       10,
		Requested:       7,
		CoverUploaded:   true,
		UnmatchedTitles: []string{"Obscure Film", "Another One"},
	}
	require.NoError(t, store.Record(ctx, run))

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "imdb-top-250", got.ListID)
	assert.Equal(t, "IMDb Top 250", got.ListName)
	assert.Equal(t, "col-9", got.CollectionID)
	assert.True(t, got.StartedAt.Equal(started), "started_at round trip")
	assert.Equal(t, 240, got.Matched)
	assert.Equal(t, 10, got.Unmatched)
	assert.Equal(t, 7, got.Requested)
	assert.True(t, got.CoverUploaded)
	assert.Equal(t, []string{"Obscure Film", "Another One"}, got.UnmatchedTitles)
}

func TestStore_RecentOrdersNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := Run{
			ID:        fmt.Sprintf("run-%d", i),
			ListID:    "list-1",
			ListName:  "List One",
			StartedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Record(ctx, run))
	}

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, "run-0", runs[2].ID)
}

func TestStore_RecentRespectsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := Run{
			ID:        fmt.Sprintf("run-%d", i),
			ListID:    "list-1",
			ListName:  "List One",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Record(ctx, run))
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_EmptyUnmatchedTitles(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-1", ListID: "list-1", ListName: "List One", StartedAt: time.Now()}
	require.NoError(t, store.Record(ctx, run))

	runs, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Empty(t, runs[0].UnmatchedTitles)
}

func TestStore_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, Run{ID: "run-1", ListID: "l", ListName: "L", StartedAt: time.Now()}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
