package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []struct {
		player string
		score  int
	}{
		{"alice", 12},
		{"bob", 5},
		{"alice", 30},
		{"carol", 20},
	} {
		_, err := store.SaveScore(rec.player, rec.score)
		require.NoError(t, err)
	}

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	got := make([]int, len(scores))
	for i, s := range scores {
		got[i] = s.Score
	}
	assert.Equal(t, []int{30, 20, 12, 5}, got)
	assert.Equal(t, "alice", scores[0].Player)
	assert.False(t, scores[0].CreatedAt.IsZero(), "CreatedAt should be populated")

	mine, err := store.PlayerScores("alice", 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 30, mine[0].Score)
	assert.Equal(t, 12, mine[1].Score)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore("p", (i+1)*10)
		require.NoError(t, err)
	}

	scores, err := store.TopScores(3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 50, scores[0].Score)
	assert.Equal(t, 40, scores[1].Score)
	assert.Equal(t, 30, scores[2].Score)

	// Non-positive limits fall back to 10.
	all, err := store.TopScores(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStoreAnonymousPlayer(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("", 3)
	require.NoError(t, err)

	scores, err := store.TopScores(1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "anonymous", scores[0].Player)

	mine, err := store.PlayerScores("", 10)
	require.NoError(t, err)
	assert.Len(t, mine, 1, "an empty player looks up the anonymous scores")
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high, "empty log")

	for _, rec := range []struct {
		player string
		score  int
	}{{"a", 10}, {"b", 30}, {"a", 20}} {
		_, err := store.SaveScore(rec.player, rec.score)
		require.NoError(t, err)
	}

	high, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 30, high)

	st, err := store.GetStats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Games: 3, Best: 30, TotalLines: 60}, st)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("a", 1)
	require.NoError(t, err)
	_, err = store.SaveScore("b", 2)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores())

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	st, err := store.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Games)
	assert.Equal(t, 0, st.Best)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}
