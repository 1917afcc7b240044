package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linecraft/internal/games/blocks"
	"github.com/vovakirdan/linecraft/internal/platform/tui"
	"github.com/vovakirdan/linecraft/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start LineCraft with the mode picker",
	Long: `Start LineCraft in interactive menu mode.

Pick a mode, open the high scores or change settings (theme, language,
sounds, reset best). After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit

Examples:
  linecraft menu
  linecraft menu --player ann
  linecraft menu --fps 30 --db ./linecraft.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	blocks.SetDifficultyPreset(flagDifficulty)

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	profile := playerProfile(store)

	for {
		menuResult, err := tui.RunMenu(store, cfg, profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		profile = menuResult.Profile

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, profile)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless --seed pinned it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		profile, err = tui.Run(game, store, cfg, profile, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
