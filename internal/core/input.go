package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. Hosts translate their raw input into actions.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W - upward impulse
	ActionRestart           // R, Enter or the Restart button - new session after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
