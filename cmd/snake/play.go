package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing Snake. The variant defaults to the one in the config.

Variants:
  snake         - The head may cross the right and bottom edge by one cell
  snake_strict  - Leaving the grid ends the game immediately

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play snake_strict
  snake play --seed 42 --tick 120ms --log snake.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := cfg.Variant
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	if err := applyTheme(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval,
		Seed:         cfg.Seed,
	}

	runErr := tui.Run(game, rc, tui.Options{
		Keys:   tui.NewKeyMap(cfg.Keys),
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game failed", "err", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
