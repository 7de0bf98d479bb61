// flappy is a Flappy Bird clone for the terminal, the desktop and SSH.
//
// Usage:
//
//	flappy play     - Play in the terminal
//	flappy window   - Play in a desktop window
//	flappy serve    - Start SSH server for remote play
//	flappy config   - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Override the simulation tick rate
//	--seed <value>       - Set RNG seed for reproducible pipes
//	--config <path>      - Custom game config YAML
//	--sprites <path>     - Custom sprite sheet YAML
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/sprites"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagSprites string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Keep the bird in the air and fly it through the gaps between pipes.
Each pipe pair you clear is worth one point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  flappy play
  flappy play --seed 42
  flappy window --fps 120
  flappy serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game config and applies flag overrides.
func loadGameConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

// loadAssets loads the game config and sprite sheet.
func loadAssets() (config.FlappyConfig, *sprites.Sheet, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	sheet, err := sprites.Load(flagSprites)
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	return cfg, sheet, nil
}

// newLogger returns a logger writing to --log-file, or to fallback if the
// flag is unset. The returned close func is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
