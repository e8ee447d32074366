package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drone/internal/config"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best sessions",
	Long: `Display the top 10 sessions, optionally for one difficulty, followed
by per-difficulty totals.

Examples:
  drone scores
  drone scores hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(preset)
	}

	store := openStore()
	defer store.Close()

	sessions, err := store.TopSessions(difficulty, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'drone play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %-12s  %s\n", "Rank", "Score", "Bits", "Mode", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %-12s  %s\n", "----", "-----", "----", "----", "------", "----")

	for i, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-7s  %-12s  %s\n", i+1, s.Score, s.Bits, s.Difficulty, s.Owner, dateStr)
	}

	stats, err := store.GetDifficultyStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-7s  %-8s  %-5s  %-6s  %s\n", "Mode", "Sessions", "Best", "Avg", "Bits")
	for _, p := range config.Presets() {
		st, ok := stats[string(p)]
		if !ok {
			continue
		}
		fmt.Printf("  %-7s  %-8d  %-5d  %-6.1f  %d\n",
			st.Difficulty, st.Sessions, st.HighScore, st.AvgScore, st.TotalBits)
	}
}
