package core

// Color represents a foreground color for a drawn primitive.
// Terminal frontends map it to ANSI 256-color codes, windowed ones use RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorCyan
	ColorPurple
	ColorWhite
	ColorGray
)

// RGB returns the 24-bit value of the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0
	case ColorRed:
		return 255, 0, 0
	case ColorCyan:
		return 0, 255, 255
	case ColorPurple:
		return 128, 0, 128
	case ColorGray:
		return 138, 138, 138
	default:
		return 255, 255, 255
	}
}
