package config

import (
	"fmt"
	"math"
)

// Progression types.
const (
	ProgressionScore = "score" // ramp follows the session score
	ProgressionLevel = "level" // ramp follows the player level
	ProgressionNone  = "none"
)

// DifficultyConfig defines the optional difficulty ramp. With the ramp
// disabled and initial_level 0 the rule constants apply unchanged.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = base rules, 1.0 = fully scaled
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the ramp.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level" or "none"
	MaxAt int    `yaml:"max_at"` // score or level at which the ramp is maxed
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpecialChanceBoost float64 `yaml:"special_chance_boost"` // added to special_chance
	RetryReduction     int     `yaml:"retry_reduction"`      // removed from max_set_retries
}

func (d DifficultyConfig) validate() error {
	switch d.Progression.Type {
	case "", ProgressionScore, ProgressionLevel, ProgressionNone:
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, d.Progression.Type)
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: initial_level %v not in [0, 1]", ErrInvalidConfig, d.InitialLevel)
	}
	if d.Scaling.SpecialChanceBoost < 0 || d.Scaling.RetryReduction < 0 {
		return fmt.Errorf("%w: difficulty scaling must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyManager derives the generator parameters for the current
// session score and player level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, playerLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(score) / maxAt
	case ProgressionLevel:
		// level 1 is the starting point
		progress = float64(playerLevel-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpecialChance returns the special-block probability for the current level.
func (d *DifficultyManager) SpecialChance(base float64, score, playerLevel int) float64 {
	level := d.Level(score, playerLevel)
	return clampF(base+level*d.cfg.Scaling.SpecialChanceBoost, 0, 1)
}

// MaxRetries returns the set retry budget for the current level.
func (d *DifficultyManager) MaxRetries(base, score, playerLevel int) int {
	level := d.Level(score, playerLevel)
	result := base - int(level*float64(d.cfg.Scaling.RetryReduction))
	if result < 0 {
		result = 0
	}
	return result
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
