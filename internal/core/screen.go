package core

import (
	"math"
	"strings"
)

// Glyphs used when rasterizing world primitives onto cells.
const (
	CircleGlyph = '●'
	BlankGlyph  = ' '
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: games draw world-space
// primitives through the Canvas methods and the platform handles display.
type Screen struct {
	width  int
	height int
	worldW float64
	worldH float64
	cells  [][]Cell
}

// NewScreen creates a screen whose world space equals its cell grid.
func NewScreen(width, height int) *Screen {
	return NewWorldScreen(width, height, float64(width), float64(height))
}

// NewWorldScreen creates a width x height cell buffer that represents a
// worldW x worldH world. World coordinates are scaled down onto the cells.
func NewWorldScreen(width, height int, worldW, worldH float64) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		worldW: worldW,
		worldH: worldH,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the world dimensions the screen represents.
func (s *Screen) Size() (w, h float64) {
	return s.worldW, s.worldH
}

// Resize changes the cell dimensions. The represented world is unchanged,
// so the scale factors follow the new grid. Content is cleared.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// scale returns cells per world unit on each axis.
func (s *Screen) scale() (sx, sy float64) {
	if s.worldW <= 0 || s.worldH <= 0 {
		return 1, 1
	}
	return float64(s.width) / s.worldW, float64(s.height) / s.worldH
}

// WorldToCell maps a world position to the cell containing it.
func (s *Screen) WorldToCell(p Vec) (col, row int) {
	sx, sy := s.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// CellToWorld maps a cell to the world position of its center.
func (s *Screen) CellToWorld(col, row int) Vec {
	sx, sy := s.scale()
	return Vec{X: (float64(col) + 0.5) / sx, Y: (float64(row) + 0.5) / sy}
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: BlankGlyph}
		}
	}
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetWithColor(x, y, r, ColorDefault)
}

// SetWithColor places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: BlankGlyph}
	}
	return s.cells[y][x]
}

// PutText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PutText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetWithColor(x+i, y, r, c)
		i++
	}
}

// FillCircle rasterizes a world-space circle. Every cell whose center lies
// inside the circle is painted, and the cell holding the circle's center is
// always painted so small circles stay visible on coarse grids.
func (s *Screen) FillCircle(cx, cy, r float64, c Color) {
	sx, sy := s.scale()
	minCol := int(math.Floor((cx - r) * sx))
	maxCol := int(math.Floor((cx + r) * sx))
	minRow := int(math.Floor((cy - r) * sy))
	maxRow := int(math.Floor((cy + r) * sy))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if Dist(s.CellToWorld(col, row), Vec{X: cx, Y: cy}) <= r {
				s.SetWithColor(col, row, CircleGlyph, c)
			}
		}
	}

	col, row := s.WorldToCell(Vec{X: cx, Y: cy})
	s.SetWithColor(col, row, CircleGlyph, c)
}

// DrawText renders text with its top-left corner at world position (x, y).
func (s *Screen) DrawText(x, y float64, text string, c Color) {
	col, row := s.WorldToCell(Vec{X: x, Y: y})
	s.PutText(col, row, text, c)
}

// String converts the screen buffer to a plain string, without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Canvas = (*Screen)(nil)
