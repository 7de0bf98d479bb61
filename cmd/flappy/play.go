package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The board is scaled to fit the window.

Controls:
  Space/Up/W   - Flap
  R/Enter      - Restart (after game over, or click the Restart button)
  Ctrl+S       - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file ./flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, sheet, err := loadAssets()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they are dropped unless --log-file is set
	logger, closeLog, err := newLogger("flappy", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Sheet:  sheet,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
}
