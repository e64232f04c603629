package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-trial/internal/core"
)

// KeyMap defines the key bindings of the maze screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns arrows, WASD and vim keys for movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next maze"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit after clear"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a forced quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, forceQuit bool) {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return core.ActionNone, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, false
	}
	return core.ActionNone, false
}

// DefaultReleaseAfter is how long a key counts as down after its last
// key event. It must exceed the terminal's auto-repeat interval.
const DefaultReleaseAfter = 150 * time.Millisecond

type keyState struct {
	last    time.Time
	repeats int
}

// KeyTracker derives pressed and held state from terminal key events.
//
// Terminals report key presses and auto-repeats but never releases. The
// first event of a key is a press. Further events of the same key within
// releaseAfter are auto-repeats and mark the key held. A key without
// events for releaseAfter is released, so a single tap is a press only.
type KeyTracker struct {
	releaseAfter time.Duration
	down         map[core.Action]*keyState
	pressed      map[core.Action]bool
}

// NewKeyTracker creates a tracker. Non-positive releaseAfter uses the default.
func NewKeyTracker(releaseAfter time.Duration) *KeyTracker {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &KeyTracker{
		releaseAfter: releaseAfter,
		down:         make(map[core.Action]*keyState),
		pressed:      make(map[core.Action]bool),
	}
}

// Press records a key event for action a at now.
func (t *KeyTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}

	st, ok := t.down[a]
	if !ok || now.Sub(st.last) > t.releaseAfter {
		t.down[a] = &keyState{last: now}
		t.pressed[a] = true
		return
	}
	st.repeats++
	st.last = now
}

// Frame writes the state at now into frame and consumes the presses.
func (t *KeyTracker) Frame(now time.Time, frame *core.InputFrame) {
	for a := range t.pressed {
		frame.Set(a)
		delete(t.pressed, a)
	}

	for a, st := range t.down {
		if now.Sub(st.last) > t.releaseAfter {
			delete(t.down, a)
			continue
		}
		if st.repeats > 0 {
			frame.Hold(a)
		}
	}
}

// Reset forgets every key.
func (t *KeyTracker) Reset() {
	clear(t.down)
	clear(t.pressed)
}
