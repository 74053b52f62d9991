package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "a", "b", "runs.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, filepath.Join(dir, "a", "b", "runs.db"))
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.SaveRun(Run{Level: "level1", Score: 100, Seconds: 30, Total: 1000})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.TopRuns("level1", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestSaveRun_TopRunsOrdering(t *testing.T) {
	s := openTestStore(t)

	for _, r := range []Run{
		{Level: "level1", Seed: 1, Score: 600, Seconds: 50, Total: 1300},
		{Level: "level1", Seed: 2, Score: 600, Seconds: 40, Total: 1400},
		{Level: "level1", Seed: 3, Score: 500, Seconds: 45.5, Total: 1400},
		{Level: "other", Seed: 4, Score: 500, Seconds: 10, Total: 2000},
	} {
		id, err := s.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	runs, err := s.TopRuns("level1", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, int64(2), runs[0].Seed, "equal totals rank the faster run first")
	assert.Equal(t, int64(3), runs[1].Seed)
	assert.Equal(t, int64(1), runs[2].Seed)
	assert.InDelta(t, 45.5, runs[1].Seconds, 1e-9)
	assert.False(t, runs[0].CreatedAt.IsZero())

	all, err := s.TopRuns("", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "other", all[0].Level)

	limited, err := s.TopRuns("level1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestBestTotal(t *testing.T) {
	s := openTestStore(t)

	best, err := s.BestTotal("level1")
	require.NoError(t, err)
	assert.Zero(t, best)

	_, err = s.SaveRun(Run{Level: "level1", Total: 900})
	require.NoError(t, err)
	_, err = s.SaveRun(Run{Level: "level1", Total: 1200})
	require.NoError(t, err)

	best, err = s.BestTotal("level1")
	require.NoError(t, err)
	assert.Equal(t, 1200, best)
}

func TestClearRuns(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SaveRun(Run{Level: "level1", Total: 900})
	require.NoError(t, err)
	_, err = s.SaveRun(Run{Level: "other", Total: 900})
	require.NoError(t, err)

	require.NoError(t, s.ClearRuns("level1"))

	runs, err := s.TopRuns("level1", 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
	runs, err = s.TopRuns("other", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
