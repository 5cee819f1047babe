package core

// Action represents a semantic game action, abstracted from physical keys,
// mouse buttons and remote input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, left click - flap, or start/restart
	ActionUp             // W, Up arrow - held upward movement
	ActionDown           // S, Down arrow - held downward movement
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionConfirm        // Enter - menu selection
	ActionBack           // B, Esc - back to menu
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input occurrence. Release marks a key-up; platforms
// that cannot observe key-ups synthesize them.
type Event struct {
	Action  Action
	Release bool
}

// Press returns a key-down event for the action.
func Press(a Action) Event {
	return Event{Action: a}
}

// Release returns a key-up event for the action.
func Release(a Action) Event {
	return Event{Action: a, Release: true}
}
