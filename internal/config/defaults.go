package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// Default returns the hardcoded default configuration: the classic 80x64
// board with a random 50% fill at 10 generations per second.
func Default() Config {
	return Config{
		Universe: UniverseConfig{
			Width:  80,
			Height: 64,
			Preset: "random",
		},
		Render: RenderConfig{
			AliveRune:  "◼",
			DeadRune:   " ",
			AliveColor: "bright_green",
			DeadColor:  "gray",
		},
		Speed: SpeedConfig{
			TickRate:           10,
			GenerationsPerTick: 1,
		},
	}
}
