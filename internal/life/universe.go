// Package life implements a toroidal Conway's Game of Life universe.
// Cell state is bit-packed (one bit per cell, eight cells per byte) and the
// raw buffer is exposed for zero-copy rendering. The package contains pure
// simulation logic with no external dependencies (especially no Bubble Tea);
// the platform handles input mapping, timing, and rendering.
package life

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
	"time"
)

// MaxCells caps the universe size. Anything beyond this is almost certainly
// a caller bug (a 2^26-cell grid is already far larger than any terminal).
const MaxCells = 1 << 26

// ErrInvalidDimensions is returned when a universe is constructed with a
// zero dimension or more than MaxCells cells.
var ErrInvalidDimensions = errors.New("life: invalid universe dimensions")

// Universe owns a fixed-size toroidal grid of cells. Rows and columns wrap
// at every edge, so the last row is adjacent to the first and likewise for
// columns. Storage is row-major: cell (row, col) is bit row*width+col.
//
// A Universe is not safe for concurrent use. It assumes a single driving
// loop invokes operations and reads in strict sequence.
type Universe struct {
	width  uint32
	height uint32
	cells  []byte
	next   []byte // scratch generation, swapped in by Tick
	rng    *rand.Rand
}

// New creates an all-dead universe with the given dimensions.
// Randomized operations use a time-based seed.
func New(width, height uint32) (*Universe, error) {
	return NewWithSeed(width, height, time.Now().UnixNano())
}

// NewWithSeed creates an all-dead universe whose random source is seeded
// deterministically, so RandomizeCells is reproducible in tests.
func NewWithSeed(width, height uint32, seed int64) (*Universe, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	total := uint64(width) * uint64(height)
	if total > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}

	n := (total + 7) / 8
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]byte, n),
		next:   make([]byte, n),
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Width returns the fixed universe width in cells.
func (u *Universe) Width() uint32 {
	return u.width
}

// Height returns the fixed universe height in cells.
func (u *Universe) Height() uint32 {
	return u.height
}

// Cells returns the packed cell buffer itself, not a copy. Bit i (byte i/8,
// mask 1<<(i%8)) is cell (i/width, i%width); 1 means alive. The slice
// aliases internal storage: it is invalidated by the next mutating call and
// must be re-fetched before each read. Callers must not retain it.
func (u *Universe) Cells() []byte {
	return u.cells
}

// Tick replaces the current generation with the next one under the standard
// B3/S23 rule: a live cell survives with 2 or 3 live neighbours, a dead cell
// becomes alive with exactly 3. Neighbour counts are taken entirely from the
// previous generation; the update is written into a scratch buffer and
// swapped in, so the generation being read is never mutated mid-scan.
func (u *Universe) Tick() {
	copy(u.next, u.cells)
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := row*u.width + col
			alive := u.bit(idx)
			n := u.liveNeighbours(row, col)

			switch {
			case alive && (n < 2 || n > 3):
				u.next[idx/8] &^= 1 << (idx % 8)
			case !alive && n == 3:
				u.next[idx/8] |= 1 << (idx % 8)
			}
		}
	}
	u.cells, u.next = u.next, u.cells
}

// liveNeighbours counts live cells among the 8 toroidally-adjacent cells.
// Adding height-1 (resp. width-1) before the modulo is "minus one" without
// leaving unsigned range.
func (u *Universe) liveNeighbours(row, col uint32) int {
	count := 0
	for _, dr := range [3]uint32{u.height - 1, 0, 1} {
		for _, dc := range [3]uint32{u.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % u.height
			c := (col + dc) % u.width
			if u.bit(r*u.width + c) {
				count++
			}
		}
	}
	return count
}

// ToggleCell flips exactly one cell. Coordinates may be any integers; they
// are wrapped onto the torus like every other entry point.
func (u *Universe) ToggleCell(row, col int) {
	idx := u.index(u.wrap(row, col))
	u.cells[idx/8] ^= 1 << (idx % 8)
}

// Set forces a single cell alive or dead, wrapping coordinates.
func (u *Universe) Set(row, col int, alive bool) {
	idx := u.index(u.wrap(row, col))
	if alive {
		u.cells[idx/8] |= 1 << (idx % 8)
	} else {
		u.cells[idx/8] &^= 1 << (idx % 8)
	}
}

// Get reports whether a single cell is alive, wrapping coordinates.
func (u *Universe) Get(row, col int) bool {
	return u.bit(u.index(u.wrap(row, col)))
}

// ClearCells kills every cell. Idempotent.
func (u *Universe) ClearCells() {
	for i := range u.cells {
		u.cells[i] = 0
	}
}

// RandomizeCells sets every cell independently to alive or dead with equal
// probability, drawn from the universe's random source.
func (u *Universe) RandomizeCells() {
	for i := uint32(0); i < u.width*u.height; i++ {
		if u.rng.Intn(2) == 1 {
			u.cells[i/8] |= 1 << (i % 8)
		} else {
			u.cells[i/8] &^= 1 << (i % 8)
		}
	}
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	total := u.width * u.height
	count := 0
	for i, b := range u.cells {
		if uint32(i) == total/8 {
			// Trailing bits past width*height are don't-care; mask them out.
			b &= byte(1<<(total%8)) - 1
		}
		count += bits.OnesCount8(b)
	}
	return count
}

// String renders the board one row per line, ◼ for alive and ◻ for dead.
func (u *Universe) String() string {
	var sb strings.Builder
	sb.Grow(int(u.width+1) * int(u.height) * 3)
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			if u.bit(row*u.width + col) {
				sb.WriteRune('◼')
			} else {
				sb.WriteRune('◻')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// bit reports the cell at a packed bit index.
func (u *Universe) bit(idx uint32) bool {
	return u.cells[idx/8]&(1<<(idx%8)) != 0
}

// index converts wrapped coordinates to a packed bit index.
func (u *Universe) index(row, col uint32) uint32 {
	return row*u.width + col
}

// wrap maps arbitrary integer coordinates onto the torus.
func (u *Universe) wrap(row, col int) (uint32, uint32) {
	h := int(u.height)
	w := int(u.width)
	r := ((row % h) + h) % h
	c := ((col % w) + w) % w
	return uint32(r), uint32(c)
}
