package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-drone/internal/audio"
	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/platform/tui"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game menu",
	Long: `Start the game. The menu lets you pick a difficulty, visit the shop,
and review missions and scores.

Controls:
  Space/Click  - Lift
  Up/Down      - Move through menus
  Enter        - Select
  Esc/B        - Back
  Q/Ctrl+C     - Quit

Examples:
  drone play
  drone play --player ace
  drone play --config ./my-drone.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logger = newLogger(f)
	} else {
		logger.Warn("logging to stderr", "error", err)
	}

	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Play without persistence if the database is unavailable.
	p := profile.Default()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "error", err)
		store = nil
	} else if p, err = store.LoadProfile(flagPlayer); err != nil {
		logger.Warn("could not load profile, using defaults", "player", flagPlayer, "error", err)
		p = profile.Default()
	}

	player := audio.NewPlayer()
	player.SetMuted(flagMute)
	if !flagMute {
		switch err := player.Init(); {
		case errors.Is(err, audio.ErrNoSpeaker):
			logger.Debug("audio disabled in this build")
		case err != nil:
			logger.Warn("audio unavailable", "error", err)
		}
	}

	app := tui.NewApp(cfg, rt, p, tui.Services{
		Store:  store,
		Owner:  flagPlayer,
		Audio:  player,
		Logger: logger,
	})

	final, runErr := tui.Run(app)
	if err := final.Flush(); err != nil {
		logger.Warn("could not save progress", "player", flagPlayer, "error", err)
	}

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited", "error", runErr)
		newLogger(os.Stderr).Error("game exited", "error", runErr)
		os.Exit(1)
	}
}
