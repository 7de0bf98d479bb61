package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/W or click   - Flap
  R/Enter or Restart    - Restart (after game over)
  Q/Esc                 - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, sheet, err := loadAssets()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("flappy", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return gui.Run(gui.Options{
		Config: cfg,
		Sheet:  sheet,
		Seed:   flagSeed,
		Logger: logger,
	})
}
