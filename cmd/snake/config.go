package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the settings after applying the config file and global flags.
With --default the built-in settings file is printed instead, which is a
good starting point for ~/.snake/config.yaml.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, source, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(out))
}
