package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/tui-life/internal/config"
	"github.com/arcadelab/tui-life/internal/core"
	"github.com/arcadelab/tui-life/internal/life"
	"github.com/arcadelab/tui-life/internal/platform/tui"
	"github.com/arcadelab/tui-life/internal/storage"
)

var (
	flagConfig string
	flagWidth  uint32
	flagHeight uint32
	flagPreset string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulator",
	Long: `Start the Game of Life simulator in the terminal.

Controls:
  Space       - Play/pause
  N           - Step one generation (while paused)
  Arrows/hjkl - Move cell cursor
  T/Enter     - Toggle cell under cursor
  G/P/S       - Stamp glider / pulsar / spaceship at cursor
  C           - Clear all cells
  R           - Randomize all cells
  +/-         - Speed up / slow down
  Q/Ctrl+C    - Quit

Mouse:
  Click       - Toggle cell
  Ctrl+Click  - Stamp glider

Examples:
  life run
  life run --width 120 --height 80
  life run --preset stripes
  life run --seed 42 --preset random
  life run --config ./my-life.yaml`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	runCmd.Flags().Uint32Var(&flagWidth, "width", 0, "Universe width in cells (0 = use config value)")
	runCmd.Flags().Uint32Var(&flagHeight, "height", 0, "Universe height in cells (0 = use config value)")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Initial pattern: empty, random, stripes, spaceship")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if flagWidth > 0 {
		cfg.Universe.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Universe.Height = flagHeight
	}
	if flagPreset != "" {
		cfg.Universe.Preset = flagPreset
	}
	if flagFPS > 0 {
		cfg.Speed.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	universe, err := life.NewWithSeed(cfg.Universe.Width, cfg.Universe.Height, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating universe: %v\n", err)
		os.Exit(1)
	}

	preset, err := life.ParsePreset(cfg.Universe.Preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	universe.Seed(preset)

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Speed.TickRate,
		Seed:     seed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	runErr := tui.Run(universe, store, cfg, rt)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
