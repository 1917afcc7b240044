// Package config loads the YAML configuration of the block puzzle: rule
// constants, per-mode board settings and the optional difficulty ramp.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxGridSize bounds the board so it still fits a terminal.
const MaxGridSize = 16

// BlocksConfig contains all configuration for the block puzzle.
type BlocksConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Modes      ModesConfig      `yaml:"modes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RulesConfig mirrors engine.Rules.
type RulesConfig struct {
	SpecialChance  float64 `yaml:"special_chance"`
	MaxSetRetries  int     `yaml:"max_set_retries"`
	OpeningRetries int     `yaml:"opening_retries"`
	FrozenLife     int     `yaml:"frozen_life"`
	LevelXPFactor  int     `yaml:"level_xp_factor"`
	LineBonus      []int   `yaml:"line_bonus"` // bonus for 0, 1, 2, 3, 4+ lines
}

// ModeConfig defines the board of one game mode.
type ModeConfig struct {
	GridSize  int `yaml:"grid_size"`
	TimeLimit int `yaml:"time_limit"` // seconds, 0 = untimed
}

// ModesConfig holds the settings of every mode.
type ModesConfig struct {
	Classic ModeConfig `yaml:"classic"`
	Rush    ModeConfig `yaml:"rush"`
	Hard    ModeConfig `yaml:"hard"`
}

// Mode returns the settings for a mode name ("classic", "rush", "hard").
func (m ModesConfig) Mode(name string) (ModeConfig, bool) {
	switch name {
	case "classic":
		return m.Classic, true
	case "rush":
		return m.Rush, true
	case "hard":
		return m.Hard, true
	}
	return ModeConfig{}, false
}

// EngineRules converts the rule section to engine.Rules.
func (c BlocksConfig) EngineRules() engine.Rules {
	return engine.Rules{
		SpecialChance:  c.Rules.SpecialChance,
		MaxSetRetries:  c.Rules.MaxSetRetries,
		OpeningRetries: c.Rules.OpeningRetries,
		FrozenLife:     c.Rules.FrozenLife,
		LevelXPFactor:  c.Rules.LevelXPFactor,
		LineBonuses:    append([]int(nil), c.Rules.LineBonus...),
	}
}

// Validate checks value ranges. Every error wraps ErrInvalidConfig.
func (c BlocksConfig) Validate() error {
	r := c.Rules
	switch {
	case r.SpecialChance < 0 || r.SpecialChance > 1:
		return fmt.Errorf("%w: special_chance %v not in [0, 1]", ErrInvalidConfig, r.SpecialChance)
	case r.MaxSetRetries < 0:
		return fmt.Errorf("%w: max_set_retries must not be negative", ErrInvalidConfig)
	case r.OpeningRetries < 0:
		return fmt.Errorf("%w: opening_retries must not be negative", ErrInvalidConfig)
	case r.FrozenLife < 1:
		return fmt.Errorf("%w: frozen_life must be at least 1", ErrInvalidConfig)
	case r.LevelXPFactor < 1:
		return fmt.Errorf("%w: level_xp_factor must be at least 1", ErrInvalidConfig)
	case len(r.LineBonus) == 0:
		return fmt.Errorf("%w: line_bonus must not be empty", ErrInvalidConfig)
	}
	for i, b := range r.LineBonus {
		if b < 0 {
			return fmt.Errorf("%w: line_bonus[%d] is negative", ErrInvalidConfig, i)
		}
	}

	for _, name := range []string{"classic", "rush", "hard"} {
		m, _ := c.Modes.Mode(name)
		if m.GridSize < 1 || m.GridSize > MaxGridSize {
			return fmt.Errorf("%w: %s grid_size %d not in [1, %d]", ErrInvalidConfig, name, m.GridSize, MaxGridSize)
		}
		if m.TimeLimit < 0 {
			return fmt.Errorf("%w: %s time_limit must not be negative", ErrInvalidConfig, name)
		}
	}
	if c.Modes.Rush.TimeLimit == 0 {
		return fmt.Errorf("%w: rush time_limit must be positive", ErrInvalidConfig)
	}

	return c.Difficulty.validate()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset accepts "", easy, normal, hard and fixed.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == ProgressionNone {
		cfg.Difficulty.Progression.Type = ProgressionLevel
	}

	if preset == DifficultyEasy {
		cfg.Rules.MaxSetRetries += 10
	}
}
