package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-dash/internal/core"
)

// KeyMap holds the key bindings for a Quantum Dash session.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultKeyMap returns arrows/WASD movement and q/esc/ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Direction maps a key message to a movement direction.
// Returns the direction (may be DirNone) and whether it is a quit request.
func (k KeyMap) Direction(msg tea.KeyMsg) (dir core.Direction, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.DirNone, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, false
	case key.Matches(msg, k.Right):
		return core.DirRight, false
	case key.Matches(msg, k.Up):
		return core.DirUp, false
	case key.Matches(msg, k.Down):
		return core.DirDown, false
	}
	return core.DirNone, false
}

// HeldKeys approximates key-held state for terminals, which only report
// presses and auto-repeats. A direction counts as held for window
// milliseconds after its latest press. Pressing a direction releases its
// opposite immediately.
type HeldKeys struct {
	window int64
	last   map[core.Direction]int64
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(windowMs int64) *HeldKeys {
	return &HeldKeys{
		window: windowMs,
		last:   make(map[core.Direction]int64, len(core.AllDirections)),
	}
}

// Press records a press of d at now.
func (h *HeldKeys) Press(d core.Direction, now int64) {
	if d == core.DirNone {
		return
	}
	delete(h.last, opposite(d))
	h.last[d] = now
}

// Held returns the directions still considered held at now.
func (h *HeldKeys) Held(now int64) core.Direction {
	held := core.DirNone
	for d, at := range h.last {
		if now-at < h.window {
			held |= d
		}
	}
	return held
}

// Reset releases every direction.
func (h *HeldKeys) Reset() {
	clear(h.last)
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.DirLeft:
		return core.DirRight
	case core.DirRight:
		return core.DirLeft
	case core.DirUp:
		return core.DirDown
	case core.DirDown:
		return core.DirUp
	}
	return core.DirNone
}
