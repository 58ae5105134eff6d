package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagSimTicks   uint64
	flagSimMoves   string
	flagSimVariant string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the final state",
	Long: `Plays a game without a terminal UI. Moves are "tick:direction" pairs;
each direction is requested just before the named tick runs. The run stops
after --ticks ticks or when the snake dies, and the final state is printed
as YAML. The same seed and moves always give the same result.

Examples:
  snake sim --seed 42 --ticks 30
  snake sim --seed 7 --ticks 100 --moves "3:down,12:left,20:up"
  snake sim --variant snake_strict --ticks 40`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 100, "Maximum number of ticks")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", `Direction changes, e.g. "3:down,10:left"`)
	simCmd.Flags().StringVar(&flagSimVariant, "variant", "", "Variant to simulate (default: config variant)")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, _, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	variant := cfg.Variant
	if flagSimVariant != "" {
		variant = flagSimVariant
	}

	var boundary snake.Boundary
	switch variant {
	case snake.IDClassic:
		boundary = snake.BoundaryLegacy
	case snake.IDStrict:
		boundary = snake.BoundaryStrict
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", variant)
		os.Exit(1)
	}

	script, err := snake.ParseScript(flagSimMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := snake.RunScript(snake.NewBoard(boundary), cfg.Seed, script, flagSimTicks)

	out, err := yaml.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
