package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/tui-life/internal/config"
	"github.com/arcadelab/tui-life/internal/core"
	"github.com/arcadelab/tui-life/internal/life"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// gridViewport computes the screen rectangle that grid cells are drawn into:
// universe cell (0,0) lands at (vp.X, vp.Y). One row is reserved at the top
// for the status bar, one at the bottom for the help bar, and one cell on
// each side of the grid for its frame.
func gridViewport(s *core.Screen, u *life.Universe) core.Rect {
	cols := core.Min(int(u.Width()), s.Width()-2)
	rows := core.Min(int(u.Height()), s.Height()-4)
	return core.NewRect(1, 2, core.Max(cols, 0), core.Max(rows, 0))
}

// drawFrame draws the box around the grid viewport.
func drawFrame(s *core.Screen, vp core.Rect) {
	s.DrawBox(core.NewRect(vp.X-1, vp.Y-1, vp.W+2, vp.H+2))
}

// drawUniverse draws the visible part of the universe onto the screen.
// It reads the packed cell buffer directly rather than probing cells one
// at a time through the engine API.
func drawUniverse(s *core.Screen, u *life.Universe, cfg config.Config, vp core.Rect) {
	aliveRune, aliveColor := cfg.AliveCell()
	deadRune, deadColor := cfg.DeadCell()

	cells := u.Cells()
	width := int(u.Width())

	for row := 0; row < vp.H; row++ {
		base := row * width
		for col := 0; col < vp.W; col++ {
			idx := base + col
			alive := cells[idx/8]&(1<<(idx%8)) != 0
			if alive {
				s.SetColored(vp.X+col, vp.Y+row, aliveRune, aliveColor)
			} else {
				s.SetColored(vp.X+col, vp.Y+row, deadRune, deadColor)
			}
		}
	}
}

// drawCursor highlights the cell cursor. The cursor is only shown while
// paused, when cell editing is the main activity.
func drawCursor(s *core.Screen, vp core.Rect, row, col int) {
	x, y := vp.X+col, vp.Y+row
	if !vp.Contains(x, y) {
		return
	}
	cell := s.GetCell(x, y)
	s.SetColored(x, y, cell.Rune, core.ColorBrightYellow)
	if cell.Rune == ' ' {
		s.SetColored(x, y, '·', core.ColorBrightYellow)
	}
}

// drawStatusBar draws the top HUD line: phase, generation, population, speed.
func drawStatusBar(s *core.Screen, phase string, generation uint64, population int, gensPerSec int) {
	status := fmt.Sprintf(" %s | gen %d | pop %d | %d gen/s", phase, generation, population, gensPerSec)
	s.DrawTextColored(0, 0, status, core.ColorBrightWhite)
}

// drawHelpBar draws the key binding summary on the bottom screen row.
func drawHelpBar(s *core.Screen) {
	var sb strings.Builder
	for i, e := range helpEntries {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(e.Keys)
		sb.WriteString(" ")
		sb.WriteString(e.Desc)
	}
	s.DrawTextColored(0, s.Height()-1, sb.String(), core.ColorGray)
}
