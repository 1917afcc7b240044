package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linecraft/internal/games/blocks"
	"github.com/vovakirdan/linecraft/internal/platform/tui"
	"github.com/vovakirdan/linecraft/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic when omitted).

Modes:
  classic - 8x8 grid, no timer
  rush    - 8x8 grid, 60 second countdown
  hard    - 7x7 grid, no timer

Controls:
  Arrows/WASD   - Move the shape
  1/2/3, Tab    - Pick a tray slot
  Enter/Space   - Place
  P             - Pause
  R             - Restart (after game over)
  B/Esc         - Back (when paused or over)
  Q/Ctrl+C      - Quit
  Ctrl+S        - Save a text screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  linecraft play
  linecraft play rush
  linecraft play hard --difficulty easy
  linecraft play --config ./my-blocks.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	mode, ok := resolveMode(arg)
	if !ok {
		exitUnknownMode(arg)
	}

	blocks.SetDifficultyPreset(flagDifficulty)

	store := openStore()
	profile := playerProfile(store)

	_, runErr := tui.Run(blocks.New(mode), store, runtimeConfig(), profile, logger)

	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close database", "error", err)
	}
}
