package core

import "strings"

// Direction is a bit set of the four movement directions.
// Several directions can be held at once.
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown

	DirNone Direction = 0
)

// AllDirections lists every single direction in a stable order.
var AllDirections = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Has reports whether every direction in d2 is set in d.
func (d Direction) Has(d2 Direction) bool {
	return d2 != DirNone && d&d2 == d2
}

// String returns a human-readable name for the direction set.
func (d Direction) String() string {
	if d == DirNone {
		return "None"
	}
	var parts []string
	if d.Has(DirLeft) {
		parts = append(parts, "Left")
	}
	if d.Has(DirRight) {
		parts = append(parts, "Right")
	}
	if d.Has(DirUp) {
		parts = append(parts, "Up")
	}
	if d.Has(DirDown) {
		parts = append(parts, "Down")
	}
	return strings.Join(parts, "+")
}

// InputFrame represents the input state for one simulation tick.
// Held is the level-triggered direction state, Clicks are the edge-triggered
// primary-button presses (in world coordinates) drained since the last frame.
type InputFrame struct {
	Held   Direction
	Clicks []Vec
	Quit   bool
	Now    int64 // Monotonic milliseconds at poll time
}

// NewInputFrame creates an empty input frame stamped with now.
func NewInputFrame(now int64) InputFrame {
	return InputFrame{Now: now}
}

// Set marks a direction as held for this frame.
func (f *InputFrame) Set(d Direction) {
	f.Held |= d
}

// Has returns true if the given direction is held this frame.
func (f InputFrame) Has(d Direction) bool {
	return f.Held.Has(d)
}

// Click records a primary-button press at world position p.
func (f *InputFrame) Click(p Vec) {
	f.Clicks = append(f.Clicks, p)
}

// Clear resets the frame for reuse, keeping the click buffer's capacity.
func (f *InputFrame) Clear() {
	f.Held = DirNone
	f.Clicks = f.Clicks[:0]
	f.Quit = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	if f.Clicks != nil {
		clone.Clicks = append([]Vec(nil), f.Clicks...)
	}
	return clone
}
