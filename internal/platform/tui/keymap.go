package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/tui-life/internal/core"
)

// KeyMapper translates Bubble Tea key messages to driver actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a driver action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	}

	switch key {
	case "up", "k":
		return core.ActionCursorUp, false
	case "down", "j":
		return core.ActionCursorDown, false
	case "left", "h":
		return core.ActionCursorLeft, false
	case "right", "l":
		return core.ActionCursorRight, false
	case " ":
		return core.ActionPlayPause, false
	case "n":
		return core.ActionStep, false
	case "t", "enter":
		return core.ActionToggle, false
	case "c":
		return core.ActionClear, false
	case "r":
		return core.ActionRandomize, false
	case "g":
		return core.ActionStampGlider, false
	case "p":
		return core.ActionStampPulsar, false
	case "s":
		return core.ActionStampSpaceship, false
	case "+", "=":
		return core.ActionSpeedUp, false
	case "-", "_":
		return core.ActionSpeedDown, false
	case "R":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// helpEntries lists the key bindings shown in the HUD, in display order.
var helpEntries = []struct {
	Keys string
	Desc string
}{
	{"space", "play/pause"},
	{"n", "step"},
	{"arrows/hjkl", "cursor"},
	{"t/enter", "toggle"},
	{"g/p/s", "stamp"},
	{"c", "clear"},
	{"r", "randomize"},
	{"+/-", "speed"},
	{"q", "quit"},
}
