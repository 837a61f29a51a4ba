package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyloop/core/internal/domain/entities"
)

func newTestRepo(t *testing.T) *EntryRepository {
	t.Helper()
	repo, err := NewEntryRepository(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return repo
}

func testEntry(date string) *entities.Entry {
	return &entities.Entry{
		Date:  date,
		Items: []string{"item for " + date},
		Reviews: []entities.Review{
			{DueDate: date, Completed: false},
		},
	}
}

func TestMissingFileIsEmptyDataset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	dates, err := repo.Dates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)

	_, err = repo.GetByDate(ctx, "2026-01-01")
	assert.ErrorIs(t, err, entities.ErrEntryNotFound)
}

func TestSaveAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testEntry("2026-01-01")))

	got, err := repo.GetByDate(ctx, "2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"item for 2026-01-01"}, got.Items)
}

func TestSaveReplacesSameDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testEntry("2026-01-01")))

	updated := testEntry("2026-01-01")
	updated.Items = []string{"new items"}
	require.NoError(t, repo.Save(ctx, updated))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"new items"}, all[0].Items)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testEntry("2026-01-01")))
	require.NoError(t, repo.Save(ctx, testEntry("2026-01-02")))

	require.NoError(t, repo.Delete(ctx, "2026-01-01"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2026-01-02", all[0].Date)

	assert.ErrorIs(t, repo.Delete(ctx, "2026-01-01"), entities.ErrEntryNotFound)
}

func TestDatesNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, d := range []string{"2026-01-02", "2026-01-10", "2026-01-01"} {
		require.NoError(t, repo.Save(ctx, testEntry(d)))
	}

	dates, err := repo.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-10", "2026-01-02", "2026-01-01"}, dates)
}

func TestCorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := NewEntryRepository(path)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	assert.Error(t, err)
}

func TestFileSurvivesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	ctx := context.Background()

	repo, err := NewEntryRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, testEntry("2026-01-01")))

	// A fresh repository over the same file sees the data.
	reopened, err := NewEntryRepository(path)
	require.NoError(t, err)
	got, err := reopened.GetByDate(ctx, "2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", got.Date)
}
