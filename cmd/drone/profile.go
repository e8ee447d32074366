package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagYes bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the player profile",
	Long: `Show the data-bit balance, high score, owned variants, and completed
missions of the current player.

Examples:
  drone profile
  drone profile --player ace
  drone profile reset --yes`,
	Args: cobra.NoArgs,
	Run:  runProfile,
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the player profile and session history",
	Args:  cobra.NoArgs,
	Run:   runProfileReset,
}

func init() {
	profileResetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm the reset")
	profileCmd.AddCommand(profileResetCmd)
}

func runProfile(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()
	p := mustLoadProfile(store)

	completed := p.CompletedMissions()
	missions := "none"
	if len(completed) > 0 {
		missions = strings.Join(completed, ", ")
	}

	fmt.Printf("Profile - %s\n", flagPlayer)
	fmt.Println()
	fmt.Printf("  %-10s  %d\n", "Data-bits", p.DataBits)
	fmt.Printf("  %-10s  %d\n", "Highscore", p.HighScore)
	fmt.Printf("  %-10s  %s\n", "Equipped", p.EquippedVariant)
	fmt.Printf("  %-10s  %s\n", "Owned", strings.Join(p.UnlockedVariants, ", "))
	fmt.Printf("  %-10s  %s\n", "Missions", missions)
}

func runProfileReset(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Fprintf(os.Stderr, "This erases all progress of %q. Re-run with --yes to confirm.\n", flagPlayer)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.ResetProfile(flagPlayer); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error resetting profile: %v\n", err)
		os.Exit(1)
	}
	if err := store.ClearSessions(flagPlayer); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Profile %q reset.\n", flagPlayer)
}
