package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventPlaced       EventKind = iota // a shape was committed to the grid
	EventLinesCleared                  // Value holds the number of lines
	EventBomb                          // a bomb detonated
	EventStar                          // a star forced extra lines
	EventLevelUp                       // Value holds the new level
	EventNewBest                       // Value holds the new best score
	EventTimeUp                        // timed mode ran out
)

// Event is emitted by Step for the platform to react to (sound, saving).
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Profile is the persisted per-player progress and preferences.
type Profile struct {
	Player   string
	Best     int
	XP       int
	Level    int
	Theme    string // "dark" or "light"
	Language string // "en" or "uk"
	Muted    bool
}

// DefaultProfile returns a fresh profile for player.
func DefaultProfile(player string) Profile {
	return Profile{
		Player:   player,
		Level:    1,
		Theme:    "dark",
		Language: "en",
	}
}
