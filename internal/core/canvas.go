package core

// Canvas is the rendering collaborator games draw into.
// Coordinates are in world space; each frontend maps them onto its surface.
type Canvas interface {
	// Size returns the world dimensions the canvas represents.
	Size() (w, h float64)

	// Clear wipes the whole frame.
	Clear()

	// FillCircle draws a filled circle centered on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// DrawText renders text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}
