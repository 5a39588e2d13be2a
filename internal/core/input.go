package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - held movement
	ActionDown           // S, Down arrow - held movement
	ActionLeft           // A, Left arrow - held movement
	ActionRight          // D, Right arrow - held movement
	ActionConfirm        // Space, Enter - start a game from the menu
	ActionBack           // Escape - leave the current game for the menu
	ActionRestart        // R - new game after game over
	ActionMute           // M - toggle sound in the menu
	ActionQuit           // Q, Ctrl+C - exit the program
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the held movement actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is everything the platform delivers for one simulation tick.
type InputFrame struct {
	// Actions holds both held directions and one-shot actions for this frame.
	Actions map[Action]bool

	// Click is the screen cell of a mouse click, if any. Games map it into
	// their own coordinate space.
	Click *Vec2

	// Elapsed is the wall-clock time since the previous frame.
	// Zero means the game should assume one nominal tick.
	Elapsed time.Duration
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

// SetClick records a click at p.
func (f *InputFrame) SetClick(p Vec2) {
	f.Click = &p
}

// Direction returns the raw movement vector for the held direction actions.
// Components are in {-1, 0, 1}; the result is not normalized.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Has(ActionUp) {
		d.Y--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	return d
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
	f.Elapsed = 0
}
