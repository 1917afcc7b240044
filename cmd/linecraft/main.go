// linecraft is a block-placement puzzle for the terminal: drop shapes on the
// grid, fill rows and columns to clear them, and keep going until nothing
// fits.
//
// Usage:
//
//	linecraft play [mode]     - Play classic, rush or hard
//	linecraft menu            - Start the mode picker
//	linecraft list            - List available modes
//	linecraft scores [mode]   - Show high scores
//	linecraft serve           - Start SSH server for remote play
//	linecraft profile ...     - Inspect or change the player profile
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.linecraft/linecraft.db)
//	--config <path>     - Use a custom blocks.yaml
//	--player <name>     - Profile to play as (default: $USER)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/games/blocks"
	"github.com/vovakirdan/linecraft/internal/platform/tui"
	"github.com/vovakirdan/linecraft/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPlayer   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linecraft",
	Short: "LineCraft - a block puzzle for your terminal",
	Long: `LineCraft is a block-placement puzzle. Drop the three shapes of each
set onto the grid, complete rows and columns to clear them and chain
clears for combo multipliers. The game ends when no shape fits.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker with settings
  list     - Show all modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  profile  - Show or change the player profile

Examples:
  linecraft menu
  linecraft play rush
  linecraft play hard --difficulty easy
  linecraft serve --ssh :2222
  linecraft profile set theme light`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		blocks.SetConfigPath(flagConfig)
		return tui.SetLogLevel(logger, flagLogLevel)
	},
	SilenceUsage: true,
}

var logger = tui.NewLogger("linecraft")

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores and profiles database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom blocks.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Profile name")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
}

func defaultPlayer() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database, or returns nil so play continues without
// persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, playing without persistence", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// mustOpenStore is openStore for commands that only exist to read or write
// the database.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// playerProfile loads the profile named by --player.
func playerProfile(store *storage.Store) core.Profile {
	if store == nil {
		return core.DefaultProfile(flagPlayer)
	}
	p, err := store.LoadProfile(flagPlayer)
	if err != nil && !errors.Is(err, storage.ErrNoProfile) {
		logger.Warn("could not load profile", "player", flagPlayer, "error", err)
	}
	return p
}

// resolveMode accepts a mode name ("rush") or its score-table ID
// ("blocks_rush"). An empty argument means classic.
func resolveMode(arg string) (blocks.Mode, bool) {
	if arg == "" {
		return blocks.ModeClassic, true
	}
	for _, m := range blocks.Modes {
		if string(m) == arg {
			return m, true
		}
	}
	return blocks.ModeOf(arg)
}

func exitUnknownMode(arg string) {
	fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", arg)
	fmt.Fprintln(os.Stderr, "Run 'linecraft list' to see available modes.")
	os.Exit(1)
}

// fatalf closes the store, reports the error and exits.
func fatalf(store *storage.Store, format string, args ...any) {
	closeStore(store)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
