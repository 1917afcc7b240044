package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linecraft/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modes",
	Long:  `Shows every registered mode with its score-table ID.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if g.Description != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", g.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'linecraft play <mode>' to play, e.g. 'linecraft play rush'.")
}
