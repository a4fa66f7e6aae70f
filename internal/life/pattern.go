package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownPattern is returned by CreateObject for pattern names that are
// not in the table, so callers can detect typos instead of silently stamping
// nothing.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Offset is a cell position relative to a pattern's anchor (its top-left
// corner).
type Offset struct {
	Row, Col int
}

// Pattern is a named set of relative cell offsets that can be stamped onto
// a universe.
type Pattern struct {
	Name    string
	Rows    int // bounding box height
	Cols    int // bounding box width
	Offsets []Offset
}

// patterns maps pattern names to their canonical offset sets. Stamping goes
// through this table; there is no string branching anywhere else.
var patterns = map[string]Pattern{
	"glider": {
		Name: "glider",
		Rows: 3,
		Cols: 3,
		Offsets: []Offset{
			{0, 1},
			{1, 2},
			{2, 0}, {2, 1}, {2, 2},
		},
	},
	// The standard 48-cell period-3 pulsar: four 3-cell bars per edge row,
	// four single cells per spine row, symmetric under 90° rotation.
	"pulsar": {
		Name:    "pulsar",
		Rows:    13,
		Cols:    13,
		Offsets: pulsarOffsets(),
	},
	// Lightweight spaceship, travels left with period 4.
	"spaceship": {
		Name: "spaceship",
		Rows: 4,
		Cols: 5,
		Offsets: []Offset{
			{0, 0}, {0, 1}, {0, 2}, {0, 3},
			{1, 0}, {1, 4},
			{2, 0},
			{3, 1}, {3, 4},
		},
	},
}

// pulsarOffsets builds the pulsar's offset set from its row structure:
// "bar" rows hold two horizontal 3-cell bars per side, "spine" rows hold
// four single cells.
func pulsarOffsets() []Offset {
	barRows := []int{0, 5, 7, 12}
	barCols := []int{2, 3, 4, 8, 9, 10}
	spineRows := []int{2, 3, 4, 8, 9, 10}
	spineCols := []int{0, 5, 7, 12}

	offsets := make([]Offset, 0, len(barRows)*len(barCols)+len(spineRows)*len(spineCols))
	for _, r := range barRows {
		for _, c := range barCols {
			offsets = append(offsets, Offset{r, c})
		}
	}
	for _, r := range spineRows {
		for _, c := range spineCols {
			offsets = append(offsets, Offset{r, c})
		}
	}
	return offsets
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Patterns returns all stampable patterns, sorted by name.
func Patterns() []Pattern {
	result := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Preview renders the pattern's bounding box as text, one row per line,
// using '#' for live cells and '.' for dead ones. Used by the CLI.
func (p Pattern) Preview() string {
	box := make([][]byte, p.Rows)
	for r := range box {
		box[r] = []byte(strings.Repeat(".", p.Cols))
	}
	for _, off := range p.Offsets {
		box[off.Row][off.Col] = '#'
	}

	var sb strings.Builder
	for _, row := range box {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CreateObject stamps the named pattern with its anchor at (row, col). Every
// offset is wrapped toroidally, so patterns may straddle any edge. Stamping
// only sets bits: cells outside the pattern keep their prior state. Unknown
// names return ErrUnknownPattern and leave the grid untouched.
func (u *Universe) CreateObject(name string, row, col int) error {
	p, err := Lookup(name)
	if err != nil {
		return err
	}
	for _, off := range p.Offsets {
		u.Set(row+off.Row, col+off.Col, true)
	}
	return nil
}
