// skirmish is a top-down arena shooter.
//
// Usage:
//
//	skirmish [play]          - Play (default command)
//	skirmish place           - Print an enemy placement for the given field
//	skirmish scores          - Show the best recorded runs
//	skirmish assets          - Write placeholder sprites as PNG files
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible placement (0 = time based)
//	--config <path>      - Game config YAML
//	--db <path>          - Runs database (default: ~/.skirmish/runs.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/skirmish/internal/logging"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "Skirmish - a top-down arena shooter",
	Long: `Skirmish drops you in an arena full of targets. Move with WASD,
aim with the mouse and click to fire. Clear the field to call the next wave.

Available commands:
  play     - Open the game window (default)
  place    - Print an enemy placement for tuning
  scores   - View the best runs
  assets   - Export placeholder sprites

Examples:
  skirmish
  skirmish play --seed 42
  skirmish place --count 10 --separation 50
  skirmish scores --limit 5`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skirmish/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(assetsCmd)
}

// newLogger builds the stderr logger or exits on a bad --log-level
func newLogger() *log.Logger {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
