package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionPress          // Space, Enter - press the cell under the cursor
	ActionUndo           // U - undo last move
	ActionRotate         // T - transpose the board
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionSlot1          // 1..9 - direct slot selection (colors, cells)
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPress:
		return "Press"
	case ActionUndo:
		return "Undo"
	case ActionRotate:
		return "Rotate"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	}
	if slot, ok := a.Slot(); ok {
		return "Slot" + string(rune('0'+slot))
	}
	return "Unknown"
}

// SlotAction returns the slot action for n in 1..9, or ActionNone.
func SlotAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionSlot1 + Action(n-1)
}

// Slot returns the 1-based slot number for slot actions.
func (a Action) Slot() (int, bool) {
	if a < ActionSlot1 || a > ActionSlot9 {
		return 0, false
	}
	return int(a-ActionSlot1) + 1, true
}

// Point is a screen position in character cells.
type Point struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame, plus the
// pointer presses in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Presses holds pointer-down positions in screen coordinates.
	Presses []Point
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

// Press records a pointer-down at screen position (x, y).
func (f *InputFrame) Press(x, y int) {
	f.Presses = append(f.Presses, Point{X: x, Y: y})
}

// Clear resets all actions and presses for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Presses = f.Presses[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Presses) > 0 {
		clone.Presses = append([]Point(nil), f.Presses...)
	}
	return clone
}
