// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake play [variant]    - Play (snake or snake_strict)
//	snake list              - List available variants
//	snake sim               - Run a headless game and print the final state
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Settings file (default: ~/.snake/config.yaml)
//	--seed <value>    - RNG seed for reproducible gameplay
//	--tick <duration> - Tick interval, e.g. 75ms
//	--log <file>      - Write logs to file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagTick   string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is played on a 24x24 grid. Eat apples to grow; hitting a wall
or your own body ends the game.

Available commands:
  play     - Play a variant (default: snake)
  list     - Show all variants
  sim      - Headless scripted run, prints the final state as YAML
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_strict --tick 100ms
  snake sim --seed 42 --ticks 50 --moves "3:down,10:left"
  snake config --default > ~/.snake/config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTick, "tick", "", "Tick interval (e.g. 75ms)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the config file and applies the global flags on top.
func loadSettings() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagTick != "" {
		d, err := time.ParseDuration(flagTick)
		if err != nil {
			return config.Config{}, "", fmt.Errorf("invalid --tick %q: %w", flagTick, err)
		}
		cfg.TickInterval = d
	}
	if flagLog != "" {
		cfg.Log.File = flagLog
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// newLogger opens the configured log file. Without one, logs are discarded
// since the game owns the terminal. The returned cleanup is never nil.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	cleanup := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           cfg.LogLevel(),
	})
	return logger, cleanup, nil
}

// applyTheme configures how snake games render.
func applyTheme(cfg config.Config) error {
	colors, err := cfg.Theme.Colors()
	if err != nil {
		return err
	}
	snake.SetRenderOptions(snake.RenderOptions{
		Theme: snake.Theme{
			Head:   colors.Head,
			Body:   colors.Body,
			Apple:  colors.Apple,
			Grid:   colors.Grid,
			Border: colors.Border,
			Text:   colors.Text,
		},
		ShowGrid: cfg.ShowGrid,
	})
	return nil
}
