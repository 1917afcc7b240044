// Package registry holds the factories of the playable modes. Each mode
// registers itself from an init function so the front end can list and
// create modes without importing them directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/linecraft/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that renders
// into a core.Screen. Implementations hold no terminal state.
type Game interface {
	// ID returns a unique identifier (e.g., "blocks", "blocks_rush").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// ProfileGame is a Game that carries persistent player progress between
// sessions. The platform loads the profile before Reset and reads it back
// after each placement and at game over.
type ProfileGame interface {
	Game
	LoadProfile(p core.Profile)
	Profile() core.Profile
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the session.
type Resizer interface {
	Resize(width, height int)
}

// Summarizer reports the figures stored next to a final score.
type Summarizer interface {
	Summary() (lines, level int)
}

// Describer is implemented by games that have a one-line description for
// the menu.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     []GameInfo
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos = append(infos, info)
}

// List returns all registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(infos))
	copy(result, infos)
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, info := range infos {
		if info.ID == id {
			return info, true
		}
	}
	return GameInfo{}, false
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
