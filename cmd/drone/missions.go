package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drone/internal/progress"
)

var missionsCmd = &cobra.Command{
	Use:   "missions [mission]",
	Short: "Show missions and their completion",
	Long: `List every mission with its reward, or show one mission by id.
Missions are checked when a session ends; each pays out once per player.

Examples:
  drone missions
  drone missions useShield`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMissions,
}

func runMissions(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()
	p := mustLoadProfile(store)

	if len(args) == 1 {
		m, ok := progress.Lookup(args[0])
		if !ok {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown mission %q\n", args[0])
			os.Exit(1)
		}
		status := "open"
		if p.MissionDone(m.ID) {
			status = "complete"
		}
		fmt.Printf("%s - %s\n", m.ID, m.Description)
		fmt.Printf("  Reward  +%d data-bits\n", m.Reward)
		fmt.Printf("  Status  %s\n", status)
		return
	}

	fmt.Printf("Missions - %s\n", flagPlayer)
	fmt.Println()
	fmt.Printf("  %-4s  %-34s  %-6s\n", "Done", "Mission", "Reward")
	fmt.Printf("  %-4s  %-34s  %-6s\n", "----", "-------", "------")

	done := 0
	for _, s := range progress.Statuses(p) {
		mark := "[ ]"
		if s.Completed {
			mark = "[x]"
			done++
		}
		fmt.Printf("  %-4s  %-34s  +%d\n", mark, s.Description, s.Reward)
	}

	fmt.Println()
	fmt.Printf("%d of %d complete\n", done, len(progress.Missions()))
}
