// Package tui provides the Bubble Tea frontend for Quantum Dash.
// It maps terminal keys and mouse clicks to input frames, paces simulation
// ticks and renders the world onto the terminal grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires the next tick after delay.
// The delay comes from a loop.Pacer so ticks land on fixed boundaries.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
