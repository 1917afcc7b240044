package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateTimeUp      GameStateType = "time_up"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Grid     string // engine grid dump, one line per row
	Slots    [3]string
	Selected int
	CursorR  int
	CursorC  int
	Score    int
	Best     int
	Combo    int
	Level    int
	XP       int
	Lines    int
	TimeLeft int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.timeUp:
		state = StateTimeUp
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var slots [3]string
	for i, s := range g.slots {
		if s != nil {
			slots[i] = s.String()
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Grid:     g.grid.String(),
		Slots:    slots,
		Selected: g.selected,
		CursorR:  g.cursor.Row,
		CursorC:  g.cursor.Col,
		Score:    g.score.Current,
		Best:     g.score.Best,
		Combo:    g.score.Combo,
		Level:    g.score.Progress.Level,
		XP:       g.score.Progress.XP,
		Lines:    g.lines,
		TimeLeft: g.score.TimeLeft,
		State:    state,
	}
}
