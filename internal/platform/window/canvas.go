package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/quantum-dash/internal/core"
)

// imageCanvas draws world primitives straight onto an ebiten image. The
// window layout equals the world size, so no scaling is needed.
type imageCanvas struct {
	img  *ebiten.Image
	w, h float64
}

func (c *imageCanvas) Size() (w, h float64) {
	return c.w, c.h
}

func (c *imageCanvas) Clear() {
	c.img.Fill(color.Black)
}

func (c *imageCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), rgba(col), true)
}

// DrawText uses the debug font, which is always white.
func (c *imageCanvas) DrawText(x, y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.img, text, int(x), int(y))
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var _ core.Canvas = (*imageCanvas)(nil)
