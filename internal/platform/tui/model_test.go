package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/storage"
)

// fakeGame ends the session on the first confirmed placement.
type fakeGame struct {
	profile core.Profile
	state   core.GameState
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string    { return "blocks" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if !in.Has(core.ActionConfirm) || g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	g.state.Score += 50
	g.state.GameOver = true
	g.profile.Best = max(g.profile.Best, g.state.Score)
	g.profile.XP += 50
	return core.StepResult{
		State: g.state,
		Events: []core.Event{
			{Kind: core.EventPlaced, Value: 50},
			{Kind: core.EventLinesCleared, Value: 2},
		},
	}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState       { return g.state }
func (g *fakeGame) LoadProfile(p core.Profile)  { g.profile = p }
func (g *fakeGame) Profile() core.Profile       { return g.profile }
func (g *fakeGame) Summary() (lines, level int) { return 7, 2 }
func (g *fakeGame) Resize(width, height int)    { g.resized = [2]int{width, height} }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelInitLoadsProfile(t *testing.T) {
	game := &fakeGame{}
	profile := core.Profile{Player: "ann", Best: 30, Level: 2, Language: "uk"}

	m := NewModel(game, nil, testConfig(), profile)
	require.NotNil(t, m.Init())

	assert.Equal(t, profile, game.profile)
	assert.Equal(t, 1, game.resets)
}

func TestModelSavesResultOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, testConfig(), core.DefaultProfile("ann"))
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("blocks", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1, "score must be saved once")
	assert.Equal(t, 50, scores[0].Score)
	assert.Equal(t, "ann", scores[0].Player)
	assert.Equal(t, 7, scores[0].Lines)
	assert.Equal(t, 2, scores[0].Level)

	p, err := store.LoadProfile("ann")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Best)
	assert.Equal(t, 50, p.XP)
	assert.Equal(t, p, m.Profile())
}

func TestModelWithoutStore(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), core.DefaultProfile("ann"))
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})

	assert.True(t, m.gameState.GameOver)
	assert.Equal(t, 50, m.Profile().Best, "progress is still tracked in memory")
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), core.DefaultProfile("ann"))
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})
	require.True(t, m.gameState.GameOver)

	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg{})

	assert.Equal(t, 2, game.resets)
	assert.False(t, m.gameState.GameOver)
	assert.False(t, m.scoreSaved)
}

func TestModelBackToMenu(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), core.DefaultProfile("ann"))
	m.Init()

	m, _ = update(t, m, runeKey("b"))
	assert.False(t, m.BackToMenu(), "back only works when paused or over")

	m.inputFrame.Clear()
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg{})
	require.True(t, m.gameState.Paused)

	m, cmd := update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "embedded models leave quitting to the session")

	m = NewModel(game, nil, testConfig(), core.DefaultProfile("ann"), WithQuitOnBack())
	m.gameState.GameOver = true
	m, cmd = update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd)
}

func TestModelQuit(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), core.DefaultProfile("ann"))
	m.Init()

	m, cmd := update(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), core.DefaultProfile("ann"))
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, [2]int{100, 40}, game.resized)
	assert.Equal(t, 1, game.resets, "resizable games are not restarted")
	assert.Equal(t, 100, m.screen.Width())
	assert.Contains(t, m.View(), "fake")
}

func TestBellCmd(t *testing.T) {
	var buf bytes.Buffer
	msg := bellCmd(&buf)()
	assert.Nil(t, msg)
	assert.Equal(t, "\a", buf.String())
}

func TestModelSaveScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewModel(&fakeGame{}, nil, testConfig(), core.DefaultProfile("ann"))
	require.NoError(t, m.saveScreenshot())

	files, err := filepath.Glob(filepath.Join(home, ".linecraft", "screenshots", "blocks_*.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
