package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // A, H, Left arrow - move cannon left
	ActionRight               // D, L, Right arrow - move cannon right
	ActionFire                // Space - fire a shot
	ActionRestart             // R, Enter - start again after game over or victory
	ActionPause               // P - pause/unpause game
	ActionQuit                // Q, Ctrl+C - exit
	ActionSelectEasy          // 1 - choose Easy as the next starting level
	ActionSelectMedium        // 2 - choose Medium as the next starting level
	ActionSelectHard          // 3 - choose Hard as the next starting level
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionSelectEasy:
		return "SelectEasy"
	case ActionSelectMedium:
		return "SelectMedium"
	case ActionSelectHard:
		return "SelectHard"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
