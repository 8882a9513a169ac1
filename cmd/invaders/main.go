// invaders is a terminal Space Invaders built on a deterministic simulation core.
//
// Usage:
//
//	invaders play            - Pick a level and play
//	invaders play --level 2  - Start directly on Medium
//	invaders levels          - Show the difficulty table
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom invaders.yaml
//	--log-file <path>   - Write match events to a file
//	--debug             - Log rejected shots and other debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the planet from your terminal",
	Long: `Invaders is a terminal take on the arcade classic. Clear three waves
of aliens, Easy to Hard, while your bunkers soak up their fire.

Available commands:
  play     - Start a run
  levels   - Show the difficulty table
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play --level hard
  invaders play --seed 42 --log-file run.log --debug
  invaders config --config ./my-invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom invaders config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write match events to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the run logger. The TUI owns the terminal, so
// without --log-file every event is discarded.
func newLogger() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f.Close, nil
}
