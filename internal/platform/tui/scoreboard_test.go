package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreboardToggle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, s := range []struct {
		player string
		score  int
	}{{"alice", 3}, {"bob", 7}, {"bob", 1}} {
		_, err := store.SaveScore(s.player, s.score)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, "bob", 80, 24)
	require.Equal(t, 3, m.Rows(), "all view")
	assert.Contains(t, m.View(), "games 3")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.IsType(t, ScoreboardModel{}, next)
	m = next.(ScoreboardModel)
	assert.Equal(t, 2, m.Rows(), "mine view")
	assert.Contains(t, m.View(), "HIGH SCORES - bob")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	assert.Equal(t, 0, m.Rows())
	assert.Contains(t, m.View(), "No scores recorded yet")
}
