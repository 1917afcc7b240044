package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linecraft/internal/registry"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the given mode (classic when omitted).

Examples:
  linecraft scores
  linecraft scores rush --limit 20
  linecraft scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	mode, ok := resolveMode(arg)
	if !ok {
		exitUnknownMode(arg)
	}
	gameID := mode.ID()

	info, _ := registry.Lookup(gameID)

	store := mustOpenStore()
	defer closeStore(store)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fatalf(store, "Error clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores of %s.\n", info.Title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fatalf(store, "Error retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'linecraft play %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-5d  %s\n",
			i+1, player, entry.Score, entry.Lines, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
	}
}
