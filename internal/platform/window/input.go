package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/quantum-dash/internal/core"
)

var directionKeys = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowLeft:  core.DirLeft,
	ebiten.KeyArrowRight: core.DirRight,
	ebiten.KeyArrowUp:    core.DirUp,
	ebiten.KeyArrowDown:  core.DirDown,
	ebiten.KeyA:          core.DirLeft,
	ebiten.KeyD:          core.DirRight,
	ebiten.KeyW:          core.DirUp,
	ebiten.KeyS:          core.DirDown,
}

// pollInput reads the keyboard and mouse state for the current tick.
// The cursor position is already in world coordinates because Layout
// returns the world size.
func pollInput(now int64) core.InputFrame {
	in := core.NewInputFrame(now)
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		in.Quit = true
		return in
	}
	for k, d := range directionKeys {
		if ebiten.IsKeyPressed(k) {
			in.Set(d)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click(core.V(float64(x), float64(y)))
	}
	return in
}
