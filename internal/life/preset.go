package life

import "fmt"

// Preset is a named whole-universe seeding mode applied at startup.
type Preset int

const (
	PresetEmpty Preset = iota
	PresetRandom
	PresetStripes
	PresetSpaceship
)

// ParsePreset maps a preset name (as used in config files and CLI flags)
// to its Preset value.
func ParsePreset(name string) (Preset, error) {
	switch name {
	case "", "empty":
		return PresetEmpty, nil
	case "random":
		return PresetRandom, nil
	case "stripes":
		return PresetStripes, nil
	case "spaceship":
		return PresetSpaceship, nil
	default:
		return PresetEmpty, fmt.Errorf("life: unknown preset %q", name)
	}
}

// String returns the preset's config-file name.
func (p Preset) String() string {
	switch p {
	case PresetRandom:
		return "random"
	case PresetStripes:
		return "stripes"
	case PresetSpaceship:
		return "spaceship"
	default:
		return "empty"
	}
}

// Seed clears the universe and applies the preset's starting field.
func (u *Universe) Seed(p Preset) {
	u.ClearCells()
	switch p {
	case PresetRandom:
		u.RandomizeCells()
	case PresetStripes:
		// Alive wherever the packed index divides by 2 or 7. Produces a
		// dense interference pattern that decays into gliders and blinkers.
		for i := uint32(0); i < u.width*u.height; i++ {
			if i%2 == 0 || i%7 == 0 {
				u.cells[i/8] |= 1 << (i % 8)
			}
		}
	case PresetSpaceship:
		// A single lightweight spaceship just below the top edge.
		// The pattern name is table-backed, so the error is unreachable.
		_ = u.CreateObject("spaceship", 1, 0)
	}
}
