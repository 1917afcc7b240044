package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linecraft/internal/core"
	"github.com/vovakirdan/linecraft/internal/i18n"
	"github.com/vovakirdan/linecraft/internal/platform/tui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the player profile",
	Long: `Inspect and edit the profile selected with --player.

Examples:
  linecraft profile show
  linecraft profile list
  linecraft profile set theme light
  linecraft profile set lang uk
  linecraft profile set mute on
  linecraft profile reset-best --player ann`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		store := mustOpenStore()
		defer closeStore(store)

		printProfile(playerProfile(store))
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored profiles by best score",
	Args:  cobra.NoArgs,
	Run:   runProfileList,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <theme|lang|mute> <value>",
	Short: "Change a preference",
	Args:  cobra.ExactArgs(2),
	Run:   runProfileSet,
}

var profileResetCmd = &cobra.Command{
	Use:   "reset-best",
	Short: "Clear the personal best",
	Args:  cobra.NoArgs,
	Run:   runProfileReset,
}

func init() {
	profileCmd.AddCommand(profileShowCmd, profileListCmd, profileSetCmd, profileResetCmd)
}

func printProfile(p core.Profile) {
	muted := "off"
	if p.Muted {
		muted = "on"
	}
	fmt.Printf("Player:   %s\n", p.Player)
	fmt.Printf("Best:     %d\n", p.Best)
	fmt.Printf("Level:    %d (%d XP)\n", p.Level, p.XP)
	fmt.Printf("Theme:    %s\n", p.Theme)
	fmt.Printf("Language: %s\n", p.Language)
	fmt.Printf("Mute:     %s\n", muted)
}

func runProfileList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer closeStore(store)

	profiles, err := store.ListProfiles()
	if err != nil {
		fatalf(store, "Error listing profiles: %v", err)
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %s\n", "Player", "Best", "Level")
	fmt.Printf("  %-16s  %-8s  %s\n", "------", "----", "-----")
	for _, p := range profiles {
		fmt.Printf("  %-16s  %-8d  %d\n", p.Player, p.Best, p.Level)
	}
}

func runProfileSet(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer closeStore(store)

	p := playerProfile(store)
	if err := applyPreference(&p, args[0], args[1]); err != nil {
		fatalf(store, "Error: %v", err)
	}
	if err := store.SaveProfile(p); err != nil {
		fatalf(store, "Error saving profile: %v", err)
	}
	printProfile(p)
}

// applyPreference sets one preference from its command-line spelling.
func applyPreference(p *core.Profile, key, value string) error {
	value = strings.ToLower(value)
	switch key {
	case "theme":
		names := make([]string, len(tui.Themes))
		for i, t := range tui.Themes {
			names[i] = t.Name
		}
		if !slices.Contains(names, value) {
			return fmt.Errorf("unknown theme %q (want %s)", value, strings.Join(names, ", "))
		}
		p.Theme = value
	case "lang", "language":
		if !i18n.Supported(value) {
			return fmt.Errorf("unknown language %q (want %s)", value, strings.Join(i18n.Languages, ", "))
		}
		p.Language = value
	case "mute", "muted":
		switch value {
		case "on", "true", "yes", "1":
			p.Muted = true
		case "off", "false", "no", "0":
			p.Muted = false
		default:
			return fmt.Errorf("mute wants on or off, got %q", value)
		}
	default:
		return fmt.Errorf("unknown preference %q (want theme, lang or mute)", key)
	}
	return nil
}

func runProfileReset(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer closeStore(store)

	if err := store.ResetBest(flagPlayer); err != nil {
		fatalf(store, "Error: %v", err)
	}
	fmt.Printf("Best score of %s cleared.\n", flagPlayer)
}
