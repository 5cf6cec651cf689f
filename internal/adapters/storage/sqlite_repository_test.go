package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usagebar/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func snapshotAt(minute int, tokens int64) domain.UsageSnapshot {
	return domain.UsageSnapshot{
		CapturedAt: time.Date(2026, 10, 17, 9, minute, 0, 0, time.UTC),
		ModelName:  "opus-4",
		Plan:       domain.PlanMax,
		TokenCount: tokens,
	}
}

func TestSQLiteRepository_SaveAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cost := 3.87
	first := snapshotAt(0, 100)
	first.Cost = &cost
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, snapshotAt(5, 200)))

	got, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(200), got[0].TokenCount)
	assert.Nil(t, got[0].Cost)
	assert.Equal(t, int64(100), got[1].TokenCount)
	require.NotNil(t, got[1].Cost)
	assert.InDelta(t, 3.87, *got[1].Cost, 1e-9)
	assert.Equal(t, domain.PlanMax, got[1].Plan)
	assert.True(t, got[1].CapturedAt.Equal(first.CapturedAt))
	assert.NotZero(t, got[1].ID)
}

func TestSQLiteRepository_ListLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, snapshotAt(i, int64(i))))
	}

	got, err := repo.List(ctx, 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].TokenCount)
	assert.Equal(t, int64(3), got[1].TokenCount)
}

func TestSQLiteRepository_PruneKeepsNewest(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Save(ctx, snapshotAt(i, int64(i))))
	}

	require.NoError(t, repo.Prune(ctx, 3))

	got, err := repo.List(ctx, 0)
	require.NoError(t, err)
	var tokens []int64
	for _, s := range got {
		tokens = append(tokens, s.TokenCount)
	}
	assert.Equal(t, []int64{5, 4, 3}, tokens)
}

func TestSQLiteRepository_PruneNegative(t *testing.T) {
	repo := newTestRepository(t)

	assert.Error(t, repo.Prune(context.Background(), -1))
}

func TestSQLiteRepository_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, snapshotAt(1, 42)))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0].TokenCount)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 5)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 5)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		err := withRetry(func() error { return sqlite3.Error{Code: sqlite3.ErrLocked} }, 2)

		assert.EqualError(t, err, "operation failed after 2 retries")
	})
}
