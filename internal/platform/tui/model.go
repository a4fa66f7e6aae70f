package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/tui-life/internal/config"
	"github.com/arcadelab/tui-life/internal/core"
	"github.com/arcadelab/tui-life/internal/life"
	"github.com/arcadelab/tui-life/internal/storage"
)

// Phase describes whether the simulation is advancing on its own.
type Phase int

const (
	PhasePaused Phase = iota
	PhaseRunning
)

// String returns the HUD label for the phase.
func (p Phase) String() string {
	if p == PhaseRunning {
		return "RUNNING"
	}
	return "PAUSED"
}

// Speed limits for the +/- keys, in driver ticks per second.
const (
	minTickRate = 1
	maxTickRate = 60
)

// Model is the Bubble Tea model for the life simulator.
type Model struct {
	universe   *life.Universe
	screen     *core.Screen
	store      *storage.Store
	cfg        config.Config
	preset     life.Preset
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	phase       Phase
	generation  uint64
	peakPop     int
	tickRate    int
	gensPerTick int

	cursorRow int
	cursorCol int

	startedAt time.Time
	runSaved  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model driving the given universe.
func NewModel(universe *life.Universe, store *storage.Store, cfg config.Config, rt core.RuntimeConfig) Model {
	preset, _ := life.ParsePreset(cfg.Universe.Preset)

	// Start the cell cursor in the middle of the grid.
	col, row := core.NewRect(0, 0, int(universe.Width()), int(universe.Height())).Center()

	return Model{
		universe:    universe,
		screen:      core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:       store,
		cfg:         cfg,
		preset:      preset,
		keyMapper:   NewKeyMapper(),
		inputFrame:  core.NewInputFrame(),
		phase:       PhaseRunning,
		cursorRow:   row,
		cursorCol:   col,
		peakPop:     universe.Population(),
		tickRate:    rt.TickRate,
		gensPerTick: cfg.Speed.GenerationsPerTick,
		startedAt:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are collected into the input
// frame and applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse processes mouse input: left click toggles the cell under the
// pointer, ctrl+click stamps a glider there.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	vp := gridViewport(m.screen, m.universe)
	if !vp.Contains(msg.X, msg.Y) {
		return m, nil
	}
	row := msg.Y - vp.Y
	col := msg.X - vp.X

	m.cursorRow, m.cursorCol = row, col
	if msg.Ctrl {
		//nolint:errcheck // Pattern name is known at compile time
		m.universe.CreateObject("glider", row, col)
	} else {
		m.universe.ToggleCell(row, col)
	}
	m.trackPeak()

	return m, nil
}

// handleResize processes window resize events. The universe keeps its
// configured dimensions; only the visible viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick applies pending input actions, then advances the simulation if
// it is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyFrame()

	if m.phase == PhaseRunning {
		for i := 0; i < m.gensPerTick; i++ {
			m.universe.Tick()
			m.generation++
		}
		m.trackPeak()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickRate)
}

// applyFrame applies every action collected since the last tick.
func (m *Model) applyFrame() {
	frame := m.inputFrame
	height := int(m.universe.Height())
	width := int(m.universe.Width())

	if frame.Has(core.ActionCursorUp) {
		m.cursorRow = (m.cursorRow - 1 + height) % height
	}
	if frame.Has(core.ActionCursorDown) {
		m.cursorRow = (m.cursorRow + 1) % height
	}
	if frame.Has(core.ActionCursorLeft) {
		m.cursorCol = (m.cursorCol - 1 + width) % width
	}
	if frame.Has(core.ActionCursorRight) {
		m.cursorCol = (m.cursorCol + 1) % width
	}

	if frame.Has(core.ActionPlayPause) {
		if m.phase == PhaseRunning {
			m.phase = PhasePaused
		} else {
			m.phase = PhaseRunning
		}
	}
	if frame.Has(core.ActionStep) && m.phase == PhasePaused {
		m.universe.Tick()
		m.generation++
		m.trackPeak()
	}

	if frame.Has(core.ActionToggle) {
		m.universe.ToggleCell(m.cursorRow, m.cursorCol)
		m.trackPeak()
	}
	if frame.Has(core.ActionClear) {
		m.universe.ClearCells()
	}
	if frame.Has(core.ActionRandomize) {
		m.universe.RandomizeCells()
		m.trackPeak()
	}

	for action, name := range map[core.Action]string{
		core.ActionStampGlider:    "glider",
		core.ActionStampPulsar:    "pulsar",
		core.ActionStampSpaceship: "spaceship",
	} {
		if frame.Has(action) {
			//nolint:errcheck // Pattern names are known at compile time
			m.universe.CreateObject(name, m.cursorRow, m.cursorCol)
			m.trackPeak()
		}
	}

	if frame.Has(core.ActionSpeedUp) {
		m.tickRate = core.Clamp(m.tickRate+2, minTickRate, maxTickRate)
	}
	if frame.Has(core.ActionSpeedDown) {
		m.tickRate = core.Clamp(m.tickRate-2, minTickRate, maxTickRate)
	}

	if frame.Has(core.ActionRestart) {
		m.universe.Seed(m.preset)
		m.generation = 0
		m.peakPop = m.universe.Population()
		m.startedAt = time.Now()
		m.runSaved = false
	}
}

// trackPeak records the highest population seen so far.
func (m *Model) trackPeak() {
	if pop := m.universe.Population(); pop > m.peakPop {
		m.peakPop = pop
	}
}

// saveRun persists the finished run. Best-effort: the UI exits regardless.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.generation == 0 {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveRun(storage.RunEntry{
		Width:          m.universe.Width(),
		Height:         m.universe.Height(),
		Generations:    m.generation,
		PeakPopulation: m.peakPop,
		Duration:       int(time.Since(m.startedAt).Seconds()),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	vp := gridViewport(m.screen, m.universe)
	drawFrame(m.screen, vp)
	drawUniverse(m.screen, m.universe, m.cfg, vp)
	if m.phase == PhasePaused {
		drawCursor(m.screen, vp, m.cursorRow, m.cursorCol)
	}
	drawStatusBar(m.screen, m.phase.String(), m.generation, m.universe.Population(), m.tickRate*m.gensPerTick)
	drawHelpBar(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(universe *life.Universe, store *storage.Store, cfg config.Config, rt core.RuntimeConfig) error {
	model := NewModel(universe, store, cfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for cell editing
	)

	_, err := p.Run()
	return err
}
