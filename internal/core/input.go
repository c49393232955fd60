package core

// Action is a semantic input, decoupled from the key or button that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up arrow, left click
	ActionPause             // P
	ActionScreenshot        // Ctrl+S
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
