// Package storage provides SQLite-based persistence for scores and player
// profiles. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/linecraft/internal/core"
)

// DefaultPath is where the database lives unless --db says otherwise.
const DefaultPath = "~/.linecraft/linecraft.db"

// ErrNoProfile is returned by LoadProfile and ResetBest for unknown players.
var ErrNoProfile = errors.New("storage: no such profile")

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished session.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	Lines     int // lines cleared during the session
	Level     int // player level at the end of the session
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS profiles (
			player TEXT PRIMARY KEY,
			best INTEGER NOT NULL DEFAULT 0,
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			theme TEXT NOT NULL DEFAULT 'dark',
			language TEXT NOT NULL DEFAULT 'en',
			muted INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished session and returns the ID of the new row.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.Level < 1 {
		e.Level = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score, lines, level) VALUES (?, ?, ?, ?, ?)",
		e.GameID, e.Player, e.Score, e.Lines, e.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game, best first.
// Equal scores keep insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, lines, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Lines, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile of player. For an unknown player
// it returns core.DefaultProfile together with ErrNoProfile, so callers
// can ignore the error and start fresh.
func (s *Store) LoadProfile(player string) (core.Profile, error) {
	p := core.DefaultProfile(player)
	var muted int
	err := s.db.QueryRow(
		`SELECT best, xp, level, theme, language, muted
		 FROM profiles WHERE player = ?`,
		player,
	).Scan(&p.Best, &p.XP, &p.Level, &p.Theme, &p.Language, &muted)

	if errors.Is(err, sql.ErrNoRows) {
		return core.DefaultProfile(player), ErrNoProfile
	}
	if err != nil {
		return core.DefaultProfile(player), fmt.Errorf("storage: cannot load profile: %w", err)
	}

	p.Muted = muted != 0
	return p, nil
}

// SaveProfile inserts or updates a profile. The stored best score never
// decreases here; use ResetBest to lower it.
func (s *Store) SaveProfile(p core.Profile) error {
	if p.Level < 1 {
		p.Level = 1
	}
	d := core.DefaultProfile(p.Player)
	if p.Theme == "" {
		p.Theme = d.Theme
	}
	if p.Language == "" {
		p.Language = d.Language
	}

	_, err := s.db.Exec(
		`INSERT INTO profiles (player, best, xp, level, theme, language, muted)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player) DO UPDATE SET
			best = MAX(profiles.best, excluded.best),
			xp = excluded.xp,
			level = excluded.level,
			theme = excluded.theme,
			language = excluded.language,
			muted = excluded.muted,
			updated_at = CURRENT_TIMESTAMP`,
		p.Player, p.Best, p.XP, p.Level, p.Theme, p.Language, boolInt(p.Muted),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// ResetBest sets the best score of player back to zero.
func (s *Store) ResetBest(player string) error {
	res, err := s.db.Exec(
		"UPDATE profiles SET best = 0, updated_at = CURRENT_TIMESTAMP WHERE player = ?",
		player,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot reset best: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot reset best: %w", err)
	}
	if n == 0 {
		return ErrNoProfile
	}
	return nil
}

// ListProfiles returns every stored profile ordered by best score.
func (s *Store) ListProfiles() ([]core.Profile, error) {
	rows, err := s.db.Query(
		`SELECT player, best, xp, level, theme, language, muted
		 FROM profiles
		 ORDER BY best DESC, player ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []core.Profile
	for rows.Next() {
		var p core.Profile
		var muted int
		if err := rows.Scan(&p.Player, &p.Best, &p.XP, &p.Level, &p.Theme, &p.Language, &muted); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile: %w", err)
		}
		p.Muted = muted != 0
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalLines, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(lines), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalLines, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
