package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun(started time.Time) Run {
	return Run{
		ID:         uuid.NewString(),
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Root:       "/tmp/project",
		Output:     "/tmp/project_snapshot.txt",
		Files:      12,
		Skipped:    3,
		PrunedDirs: 2,
		Bytes:      4096,
	}
}

// TestRecordAndRecent verifies round-tripping runs through the journal
func TestRecordAndRecent(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	run := testRun(time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Record(ctx, run))

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.Root, got.Root)
	assert.Equal(t, run.Output, got.Output)
	assert.Equal(t, run.Files, got.Files)
	assert.Equal(t, run.Skipped, got.Skipped)
	assert.Equal(t, run.PrunedDirs, got.PrunedDirs)
	assert.Equal(t, run.Bytes, got.Bytes)
	assert.True(t, run.StartedAt.Equal(got.StartedAt), "StartedAt = %v, want %v", got.StartedAt, run.StartedAt)
}

// TestRecentOrdersNewestFirst verifies ordering and the limit
func TestRecentOrdersNewestFirst(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	var ids []string
	for i := 0; i < 5; i++ {
		run := testRun(base.Add(time.Duration(i) * time.Minute))
		ids = append(ids, run.ID)
		require.NoError(t, store.Record(ctx, run))
	}

	runs, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, ids[4], runs[0].ID)
	assert.Equal(t, ids[3], runs[1].ID)
	assert.Equal(t, ids[2], runs[2].ID)
}

// TestRecentEmptyJournal verifies an empty journal yields no rows
func TestRecentEmptyJournal(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

// TestNewStoreCreatesDirectory verifies parent directories are created
func TestNewStoreCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(context.Background(), testRun(time.Now())))
}
