// life is a terminal Game of Life simulator with a toroidal, bit-packed grid.
//
// Usage:
//
//	life run                 - Run the simulator in the terminal
//	life serve               - Start SSH server for remote sessions
//	life patterns            - List stampable patterns
//	life stats               - Show run history and totals
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: from config)
//	--seed <value>  - Set RNG seed for reproducible randomization
//	--db <path>     - Set database path (default: ~/.life/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on a toroidal grid, rendered live
in the terminal with interactive cell editing.

Available commands:
  run       - Run the simulator
  serve     - Start SSH server for remote sessions
  patterns  - List stampable patterns
  stats     - View run history

Examples:
  life run
  life run --width 120 --height 80 --preset stripes
  life serve --ssh :2222
  life patterns
  life stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(statsCmd)
}
