package life

import (
	"bytes"
	"errors"
	"testing"
)

func mustNew(t *testing.T, w, h uint32) *Universe {
	t.Helper()
	u, err := NewWithSeed(w, h, 12345)
	if err != nil {
		t.Fatalf("NewWithSeed(%d, %d) failed: %v", w, h, err)
	}
	return u
}

// snapshot copies the packed buffer, since Cells aliases live storage.
func snapshot(u *Universe) []byte {
	return append([]byte(nil), u.Cells()...)
}

func TestInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"both zero", 0, 0},
		{"too many cells", 1 << 16, 1 << 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.w, tc.h); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", tc.w, tc.h, err)
			}
		})
	}
}

func TestConstructionDimensions(t *testing.T) {
	u := mustNew(t, 80, 64)

	if u.Width() != 80 {
		t.Errorf("Width() = %d, want 80", u.Width())
	}
	if u.Height() != 64 {
		t.Errorf("Height() = %d, want 64", u.Height())
	}
	if len(u.Cells()) != 80*64/8 {
		t.Errorf("Cells() length = %d, want %d", len(u.Cells()), 80*64/8)
	}
	if u.Population() != 0 {
		t.Errorf("new universe population = %d, want 0", u.Population())
	}
}

func TestBitPackingNonByteAligned(t *testing.T) {
	// 17*3 = 51 bits packs into ceil(51/8) = 7 bytes.
	u := mustNew(t, 17, 3)

	if len(u.Cells()) != 7 {
		t.Fatalf("Cells() length = %d, want 7", len(u.Cells()))
	}

	// Every cell must map to its own bit: setting one cell at a time flips
	// exactly bit row*width+col and nothing else.
	for row := 0; row < 3; row++ {
		for col := 0; col < 17; col++ {
			u.ClearCells()
			u.Set(row, col, true)

			if got := u.Population(); got != 1 {
				t.Fatalf("population after Set(%d, %d) = %d, want 1", row, col, got)
			}
			idx := uint32(row*17 + col)
			if u.Cells()[idx/8]&(1<<(idx%8)) == 0 {
				t.Fatalf("Set(%d, %d) did not set bit %d", row, col, idx)
			}
		}
	}

	// All cells together fill every in-range bit.
	for row := 0; row < 3; row++ {
		for col := 0; col < 17; col++ {
			u.Set(row, col, true)
		}
	}
	if got := u.Population(); got != 51 {
		t.Errorf("full-grid population = %d, want 51", got)
	}
}

func TestCellsAliasesStorage(t *testing.T) {
	u := mustNew(t, 8, 8)

	// Writing through the view must be visible to the engine: this is the
	// zero-copy contract renderers rely on.
	u.Cells()[0] |= 1 // bit 0 = cell (0, 0)
	if !u.Get(0, 0) {
		t.Error("write through Cells() not visible via Get")
	}

	u.ToggleCell(0, 0)
	if u.Cells()[0]&1 != 0 {
		t.Error("ToggleCell not visible through Cells()")
	}
}

func TestTickDeterminism(t *testing.T) {
	// Same seed, same operations: byte-identical results.
	u1 := mustNew(t, 32, 32)
	u2 := mustNew(t, 32, 32)
	u1.RandomizeCells()
	u2.RandomizeCells()

	if !bytes.Equal(u1.Cells(), u2.Cells()) {
		t.Fatal("identical seeds produced different randomized grids")
	}

	for i := 0; i < 10; i++ {
		u1.Tick()
		u2.Tick()
		if !bytes.Equal(u1.Cells(), u2.Cells()) {
			t.Fatalf("grids diverged after %d ticks", i+1)
		}
	}
}

func TestTickFromSnapshot(t *testing.T) {
	// Ticking twice from the same starting snapshot yields identical
	// results: no hidden randomness in the transition.
	u1 := mustNew(t, 24, 24)
	u1.RandomizeCells()

	u2 := mustNew(t, 24, 24)
	copy(u2.Cells(), u1.Cells())

	u1.Tick()
	u2.Tick()
	if !bytes.Equal(u1.Cells(), u2.Cells()) {
		t.Error("same snapshot produced different next generations")
	}
}

func TestUnderpopulation(t *testing.T) {
	u := mustNew(t, 8, 8)
	u.Set(4, 4, true)

	u.Tick()
	if u.Population() != 0 {
		t.Errorf("lone cell survived a tick, population = %d", u.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	u := mustNew(t, 8, 8)
	for _, c := range [][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}} {
		u.Set(c[0], c[1], true)
	}
	before := snapshot(u)

	u.Tick()
	if !bytes.Equal(u.Cells(), before) {
		t.Error("block still life changed after a tick")
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	u := mustNew(t, 16, 16)
	for _, col := range []int{4, 5, 6} {
		u.Set(5, col, true)
	}
	horizontal := snapshot(u)

	u.Tick()
	for _, row := range []int{4, 5, 6} {
		if !u.Get(row, 5) {
			t.Fatalf("blinker cell (%d, 5) dead after one tick", row)
		}
	}
	if u.Population() != 3 {
		t.Fatalf("blinker population = %d after one tick, want 3", u.Population())
	}

	u.Tick()
	if !bytes.Equal(u.Cells(), horizontal) {
		t.Error("blinker did not return to its original phase after two ticks")
	}
}

func TestToroidalWrapAcrossRowSeam(t *testing.T) {
	// A vertical blinker straddling the top edge: rows height-1, 0, 1.
	// Without wraparound neighbour counting it would just die.
	u := mustNew(t, 8, 8)
	u.Set(7, 5, true)
	u.Set(0, 5, true)
	u.Set(1, 5, true)

	u.Tick()

	want := map[[2]int]bool{{0, 4}: true, {0, 5}: true, {0, 6}: true}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if u.Get(row, col) != want[[2]int{row, col}] {
				t.Errorf("cell (%d, %d) = %v, want %v", row, col, u.Get(row, col), want[[2]int{row, col}])
			}
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	u := mustNew(t, 20, 20)
	if err := u.CreateObject("glider", 5, 5); err != nil {
		t.Fatalf("CreateObject(glider) failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		u.Tick()
	}

	// Period 4, diagonal displacement (1, 1): the same 5-cell shape
	// anchored one row down and one column right.
	want := mustNew(t, 20, 20)
	if err := want.CreateObject("glider", 6, 6); err != nil {
		t.Fatalf("CreateObject(glider) failed: %v", err)
	}
	if !bytes.Equal(u.Cells(), want.Cells()) {
		t.Errorf("glider after 4 ticks:\n%vwant:\n%v", u, want)
	}
}

func TestGliderWrapsAtEdge(t *testing.T) {
	// Stamped so it straddles the bottom-right corner; after a full period
	// it must reappear translated, wrapped onto the opposite edges.
	u := mustNew(t, 12, 12)
	if err := u.CreateObject("glider", 10, 10); err != nil {
		t.Fatalf("CreateObject(glider) failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		u.Tick()
	}

	want := mustNew(t, 12, 12)
	if err := want.CreateObject("glider", 11, 11); err != nil {
		t.Fatalf("CreateObject(glider) failed: %v", err)
	}
	if !bytes.Equal(u.Cells(), want.Cells()) {
		t.Errorf("wrapped glider after 4 ticks:\n%vwant:\n%v", u, want)
	}
}

func TestClearCellsIdempotent(t *testing.T) {
	u := mustNew(t, 16, 16)
	u.RandomizeCells()

	u.ClearCells()
	once := snapshot(u)
	if u.Population() != 0 {
		t.Fatalf("population after clear = %d, want 0", u.Population())
	}

	u.ClearCells()
	if !bytes.Equal(u.Cells(), once) {
		t.Error("second ClearCells changed the grid")
	}
}

func TestToggleCellInvolution(t *testing.T) {
	u := mustNew(t, 16, 16)
	u.RandomizeCells()
	before := snapshot(u)

	u.ToggleCell(3, 4)
	if bytes.Equal(u.Cells(), before) {
		t.Fatal("ToggleCell changed nothing")
	}
	if diff := diffBits(before, u.Cells()); diff != 1 {
		t.Fatalf("ToggleCell flipped %d bits, want 1", diff)
	}

	u.ToggleCell(3, 4)
	if !bytes.Equal(u.Cells(), before) {
		t.Error("toggling the same cell twice did not restore the grid")
	}
}

func TestToggleCellWrapsCoordinates(t *testing.T) {
	u := mustNew(t, 10, 10)

	// Negative and out-of-range coordinates wrap onto the torus like every
	// other entry point.
	u.ToggleCell(-1, -1)
	if !u.Get(9, 9) {
		t.Error("ToggleCell(-1, -1) did not hit cell (9, 9)")
	}

	u.ToggleCell(10, 23)
	if !u.Get(0, 3) {
		t.Error("ToggleCell(10, 23) did not hit cell (0, 3)")
	}
}

func TestRandomizeCellsReproducibleWithSeed(t *testing.T) {
	u1 := mustNew(t, 20, 20)
	u2 := mustNew(t, 20, 20)

	u1.RandomizeCells()
	u2.RandomizeCells()
	if !bytes.Equal(u1.Cells(), u2.Cells()) {
		t.Error("same seed produced different random fields")
	}

	// A 50% fill of 400 cells landing on all-dead or all-alive would mean
	// the randomness is broken.
	if p := u1.Population(); p == 0 || p == 400 {
		t.Errorf("randomized population = %d, not plausibly uniform", p)
	}
}

func TestStringRendering(t *testing.T) {
	u := mustNew(t, 3, 2)
	u.Set(0, 1, true)

	want := "◻◼◻\n◻◻◻\n"
	if got := u.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// diffBits counts bit positions where two equal-length buffers differ.
func diffBits(a, b []byte) int {
	count := 0
	for i := range a {
		x := a[i] ^ b[i]
		for x != 0 {
			count++
			x &= x - 1
		}
	}
	return count
}
