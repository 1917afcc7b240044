package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/linecraft/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func saveScores(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		_, err := store.SaveScore(ScoreEntry{GameID: gameID, Player: "ann", Score: sc})
		require.NoError(t, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.linecraft/x.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".linecraft", "x.db"), got)

	got, err = ExpandHome("/abs/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/x.db", got)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveScores(t, store, "blocks", 100, 50, 200)
	saveScores(t, store, "blocks_rush", 500)

	scores, err := store.TopScores("blocks", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, "ann", scores[0].Player)
	assert.Equal(t, 1, scores[0].Level, "level defaults to 1")
	assert.False(t, scores[0].CreatedAt.IsZero())

	rush, err := store.TopScores("blocks_rush", 10)
	require.NoError(t, err)
	assert.Len(t, rush, 1)
}

func TestStoreSaveScoreKeepsDetails(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{GameID: "blocks", Player: "bo", Score: 420, Lines: 12, Level: 3})
	require.NoError(t, err)

	scores, err := store.TopScores("blocks", 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 12, scores[0].Lines)
	assert.Equal(t, 3, scores[0].Level)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "blocks", 100, 200, 300, 400, 500)

	scores, err := store.TopScores("blocks", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 300, scores[2].Score)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blocks")
	require.NoError(t, err)
	assert.Zero(t, high)

	saveScores(t, store, "blocks", 100, 300, 200)
	high, err = store.HighScore("blocks")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "blocks", 100, 200)
	saveScores(t, store, "blocks_hard", 300)

	require.NoError(t, store.ClearScores("blocks"))

	scores, err := store.TopScores("blocks", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	hard, err := store.TopScores("blocks_hard", 10)
	require.NoError(t, err)
	assert.Len(t, hard, 1, "other modes are not affected")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blocks")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	_, err = store.SaveScore(ScoreEntry{GameID: "blocks", Score: 100, Lines: 4})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{GameID: "blocks", Score: 300, Lines: 6})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{GameID: "blocks_rush", Score: 50})
	require.NoError(t, err)

	stats, err := store.GetGameStats("blocks")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.EqualValues(t, 10, stats.TotalLines)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 50, all["blocks_rush"].HighScore)
}

func TestLoadProfileMissing(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProfile("nobody")
	assert.ErrorIs(t, err, ErrNoProfile)
	assert.Equal(t, core.DefaultProfile("nobody"), p)
}

func TestSaveAndLoadProfile(t *testing.T) {
	store := openTestStore(t)

	want := core.Profile{
		Player:   "ann",
		Best:     1200,
		XP:       75,
		Level:    4,
		Theme:    "light",
		Language: "uk",
		Muted:    true,
	}
	require.NoError(t, store.SaveProfile(want))

	got, err := store.LoadProfile("ann")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveProfileBestNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveProfile(core.Profile{Player: "ann", Best: 500, Level: 2}))
	require.NoError(t, store.SaveProfile(core.Profile{Player: "ann", Best: 300, XP: 40, Level: 3}))

	p, err := store.LoadProfile("ann")
	require.NoError(t, err)
	assert.Equal(t, 500, p.Best)
	assert.Equal(t, 40, p.XP, "other fields are overwritten")
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, "dark", p.Theme, "empty theme falls back to default")
}

func TestResetBest(t *testing.T) {
	store := openTestStore(t)

	assert.ErrorIs(t, store.ResetBest("ghost"), ErrNoProfile)

	require.NoError(t, store.SaveProfile(core.Profile{Player: "ann", Best: 900, XP: 10, Level: 2}))
	require.NoError(t, store.ResetBest("ann"))

	p, err := store.LoadProfile("ann")
	require.NoError(t, err)
	assert.Zero(t, p.Best)
	assert.Equal(t, 2, p.Level, "reset only touches best")
}

func TestListProfiles(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveProfile(core.Profile{Player: "low", Best: 10}))
	require.NoError(t, store.SaveProfile(core.Profile{Player: "high", Best: 99}))

	profiles, err := store.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "high", profiles[0].Player)
	assert.Equal(t, 1, profiles[1].Level)
}
