// Package config provides YAML-based configuration loading for the life
// platform.
package config

import (
	"fmt"

	"github.com/arcadelab/tui-life/internal/core"
	"github.com/arcadelab/tui-life/internal/life"
)

// Config contains all configuration for a simulation session.
type Config struct {
	Universe UniverseConfig `yaml:"universe"`
	Render   RenderConfig   `yaml:"render"`
	Speed    SpeedConfig    `yaml:"speed"`
}

// UniverseConfig defines the simulated grid.
type UniverseConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Preset string `yaml:"preset"` // empty, random, stripes, spaceship
}

// RenderConfig defines how cells are drawn.
type RenderConfig struct {
	AliveRune  string `yaml:"alive_rune"`
	DeadRune   string `yaml:"dead_rune"`
	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
}

// SpeedConfig defines the simulation cadence.
type SpeedConfig struct {
	TickRate           int `yaml:"tick_rate"`            // driver ticks per second
	GenerationsPerTick int `yaml:"generations_per_tick"` // generations advanced per tick while running
}

// Validate checks the configuration before the engine is built, so bad
// values surface as config errors rather than deep in the platform.
func (c Config) Validate() error {
	if c.Universe.Width == 0 || c.Universe.Height == 0 {
		return fmt.Errorf("config: universe dimensions must be positive, got %dx%d",
			c.Universe.Width, c.Universe.Height)
	}
	if _, err := life.ParsePreset(c.Universe.Preset); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Render.AliveRune == "" || c.Render.DeadRune == "" {
		return fmt.Errorf("config: alive_rune and dead_rune must be set")
	}
	if _, ok := core.ParseColor(c.Render.AliveColor); !ok {
		return fmt.Errorf("config: unknown alive_color %q", c.Render.AliveColor)
	}
	if _, ok := core.ParseColor(c.Render.DeadColor); !ok {
		return fmt.Errorf("config: unknown dead_color %q", c.Render.DeadColor)
	}
	if c.Speed.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Speed.TickRate)
	}
	if c.Speed.GenerationsPerTick <= 0 {
		return fmt.Errorf("config: generations_per_tick must be positive, got %d", c.Speed.GenerationsPerTick)
	}
	return nil
}

// AliveCell returns the rune and color used for live cells.
func (c Config) AliveCell() (rune, core.Color) {
	color, _ := core.ParseColor(c.Render.AliveColor)
	return firstRune(c.Render.AliveRune, '◼'), color
}

// DeadCell returns the rune and color used for dead cells.
func (c Config) DeadCell() (rune, core.Color) {
	color, _ := core.ParseColor(c.Render.DeadColor)
	return firstRune(c.Render.DeadRune, ' '), color
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
