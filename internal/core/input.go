package core

// Action represents a semantic driver action, abstracted from physical key
// presses. The driver works with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionCursorUp              // Move the cell cursor up
	ActionCursorDown            // Move the cell cursor down
	ActionCursorLeft            // Move the cell cursor left
	ActionCursorRight           // Move the cell cursor right
	ActionPlayPause             // Toggle between running and paused
	ActionStep                  // Advance exactly one generation while paused
	ActionToggle                // Flip the cell under the cursor
	ActionClear                 // Kill every cell
	ActionRandomize             // Re-roll the whole field
	ActionStampGlider           // Stamp a glider at the cursor
	ActionStampPulsar           // Stamp a pulsar at the cursor
	ActionStampSpaceship        // Stamp a spaceship at the cursor
	ActionSpeedUp               // More generations per second
	ActionSpeedDown             // Fewer generations per second
	ActionRestart               // Re-seed the universe from its preset
	ActionQuit                  // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionPlayPause:
		return "PlayPause"
	case ActionStep:
		return "Step"
	case ActionToggle:
		return "Toggle"
	case ActionClear:
		return "Clear"
	case ActionRandomize:
		return "Randomize"
	case ActionStampGlider:
		return "StampGlider"
	case ActionStampPulsar:
		return "StampPulsar"
	case ActionStampSpaceship:
		return "StampSpaceship"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single driver tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
