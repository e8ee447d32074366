// drone is a neon side-scroller for the terminal: lift a drone through
// scrolling gaps, collect data-bits, and spend them on cosmetics.
//
// Usage:
//
//	drone play                - Open the game menu
//	drone shop [buy|equip]    - List, buy, or equip drone variants
//	drone missions            - Show missions and their completion
//	drone profile [reset]     - Show or reset the player profile
//	drone scores [difficulty] - Show the best recorded sessions
//	drone serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.drone/drone.db)
//	--config <path>  - Use a custom game config YAML
//	--mute           - Disable sound
//	--player <name>  - Profile to play as (default: local)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/storage"

	// Register drone variants
	_ "github.com/vovakirdan/neon-drone/internal/skins"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagMute       bool
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drone",
	Short: "Neon Drone - a synthwave side-scroller for your terminal",
	Long: `Neon Drone is a one-button side-scroller. Hold the drone in the air,
thread it through the gaps, and grab power-ups and data-bits on the way.

Available commands:
  play      - Open the game menu
  shop      - List, buy, or equip drone variants
  missions  - Show missions and their completion
  profile   - Show or reset the player profile
  scores    - View the best sessions
  serve     - Start SSH server for remote play

Examples:
  drone play
  drone play --player ace --mute
  drone shop buy enforcer
  drone scores hard
  drone serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to profile and session database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.DefaultOwner, "Profile name")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "drone",
	})
}

// openLogFile opens ~/.drone/drone.log for appending. The full-screen program
// owns the terminal, so records go there while it runs.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".drone")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "drone.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadConfig loads the game config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// mustLoadProfile loads the --player profile or exits.
func mustLoadProfile(store *storage.Store) profile.Profile {
	p, err := store.LoadProfile(flagPlayer)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	return p
}
