package config

import (
	_ "embed"

	"github.com/vovakirdan/linecraft/internal/games/blocks/engine"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration. It matches
// defaults/blocks.yaml and is used when even the embedded file fails to parse.
func DefaultBlocksConfig() BlocksConfig {
	rules := engine.DefaultRules()
	return BlocksConfig{
		Rules: RulesConfig{
			SpecialChance:  rules.SpecialChance,
			MaxSetRetries:  rules.MaxSetRetries,
			OpeningRetries: rules.OpeningRetries,
			FrozenLife:     rules.FrozenLife,
			LevelXPFactor:  rules.LevelXPFactor,
			LineBonus:      rules.LineBonuses,
		},
		Modes: ModesConfig{
			Classic: ModeConfig{GridSize: 8},
			Rush:    ModeConfig{GridSize: 8, TimeLimit: 60},
			Hard:    ModeConfig{GridSize: 7},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLevel,
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpecialChanceBoost: 0.15,
				RetryReduction:     8,
			},
		},
	}
}
