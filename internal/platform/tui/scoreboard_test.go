package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/storage"
)

func TestScoreboardModesWrap(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30, core.DefaultProfile("ann"))
	require.Len(t, m.games, 3)

	m.moveMode(-1)
	assert.Equal(t, 2, m.gameCursor)
	m.moveMode(1)
	assert.Equal(t, 0, m.gameCursor)
}

func TestScoreboardLoadsPerMode(t *testing.T) {
	store := openStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "blocks", Player: "ann", Score: 120, Lines: 4},
		{GameID: "blocks", Player: "bo", Score: 480, Lines: 11},
		{GameID: "blocks_rush", Player: "ann", Score: 75},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30, core.DefaultProfile("ann"))
	require.Len(t, m.scores, 2)
	assert.Equal(t, "bo", m.scores[0].Player)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	require.Len(t, m.scores, 1)
	assert.Equal(t, 75, m.scores[0].Score)

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Time Rush")
	assert.Contains(t, view, "75")
}

func TestScoreboardEmpty(t *testing.T) {
	profile := core.DefaultProfile("ann")
	profile.Language = "uk"

	m := NewScoreboardModel(openStore(t), 60, 24, profile)
	assert.False(t, m.showSidebar)

	view := m.View()
	assert.Contains(t, view, "РЕКОРДИ")
	assert.Contains(t, view, "Рекордів ще немає.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30, core.DefaultProfile("ann"))
	next, cmd := m.Update(runeKey("b"))
	assert.NotNil(t, cmd)
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
	assert.Empty(t, next.View())

	next, _ = m.Update(runeKey("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}

func TestScoreboardResizeSwitchesLayout(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30, core.DefaultProfile("ann"))
	assert.True(t, m.showSidebar)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.False(t, next.(ScoreboardModel).showSidebar)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Клас.", truncate("Класика", 5))
}
