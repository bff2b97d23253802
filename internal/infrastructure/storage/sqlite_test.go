package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_CreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.SaveScore("tutorial", 5, true)
	require.NoError(t, err)

	high, err := store.HighScore("tutorial")
	require.NoError(t, err)
	assert.Equal(t, 5, high)
}

func TestStore_TopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		level     string
		score     int
		completed bool
	}{
		{"tutorial", 10, true},
		{"tutorial", 5, false},
		{"tutorial", 20, true},
		{"level1", 50, false},
	} {
		_, err := store.SaveScore(s.level, s.score, s.completed)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("tutorial", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{20, 10, 5}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.True(t, scores[0].Completed)
	assert.False(t, scores[2].Completed)
	assert.Equal(t, "tutorial", scores[0].Level)
	assert.False(t, scores[0].CreatedAt.IsZero())

	limited, err := store.TopScores("tutorial", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := store.TopScores("", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "level1", all[0].Level)

	none, err := store.TopScores("missing", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_HighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tutorial")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	_, err = store.SaveScore("tutorial", 15, false)
	require.NoError(t, err)
	_, err = store.SaveScore("tutorial", 35, true)
	require.NoError(t, err)

	high, err = store.HighScore("tutorial")
	require.NoError(t, err)
	assert.Equal(t, 35, high)
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("level1", 25, true)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	high, err := store.HighScore("level1")
	require.NoError(t, err)
	assert.Equal(t, 25, high)
}
