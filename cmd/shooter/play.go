package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  Arrows/WASD    - Move (hold)
  Space/Enter    - Start
  Esc            - Back to the menu
  R              - Restart (after game over)
  M              - Toggle sound (in the menu)
  Mouse          - Click the menu buttons
  Q              - Quit (in the menu)
  Ctrl+C         - Quit at any time
  Ctrl+S         - Save a screenshot to ~/.shooter/screenshots
  Ctrl+Y         - Copy the screen to the clipboard

Examples:
  shooter play
  shooter play --mute --fps 30
  shooter play --config ./my-shooter.yaml --log ./shooter.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The soundtrack volume is needed before the game loads its config.
	musicVolume := config.DefaultShooterConfig().Audio.Music
	if gameCfg, err := config.LoadShooter(flagConfig); err == nil {
		musicVolume = gameCfg.Audio.Music
	}

	sink, err := audio.Open(musicVolume)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	if m, ok := sink.(*audio.Manager); ok {
		defer m.Close()
	}
	if flagMute {
		sink.ToggleMute()
	}
	shooter.SetAudio(sink)

	game, err := registry.Create(shooter.ID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	model := tui.NewModel(game, store, cfg).WithLogger(logger)
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
