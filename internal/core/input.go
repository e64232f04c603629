package core

// Action is a semantic game input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // R - new maze after a clear
	ActionQuit           // Q - leave after a clear
)

// Directions lists the movement actions in priority order: when several
// are active in one frame, the first one wins.
var Directions = [4]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the grid step for a movement action, or (0, 0).
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// InputFrame is the input state for one simulation tick.
//
// Pressed actions went from up to down during this frame (edge-triggered).
// Held actions are down this frame (level-triggered); a held key reports
// Held every frame until it is released.
type InputFrame struct {
	Actions map[Action]bool
	Holding map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holding: make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held down this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Holding == nil {
		f.Holding = make(map[Action]bool)
	}
	f.Holding[a] = true
}

// Held returns true if the action is held down this frame.
func (f InputFrame) Held(a Action) bool {
	if f.Holding == nil {
		return false
	}
	return f.Holding[a]
}

// PressedDirection returns the highest-priority direction pressed this frame.
func (f InputFrame) PressedDirection() (Action, bool) {
	for _, a := range Directions {
		if f.Has(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// HeldDirection returns the highest-priority direction held this frame.
func (f InputFrame) HeldDirection() (Action, bool) {
	for _, a := range Directions {
		if f.Held(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Holding {
		delete(f.Holding, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Holding {
		clone.Holding[k] = v
	}
	return clone
}
