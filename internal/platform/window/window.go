// Package window runs Quantum Dash in a desktop window using ebiten.
// Ebiten owns the frame loop and calls Update at the configured TPS.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/registry"
)

// Title is the window caption.
const Title = "Quantum Dash"

// Options configures the window frontend.
type Options struct {
	Logger *log.Logger
}

// runner adapts a registry.Game to ebiten.Game.
type runner struct {
	game   registry.Game
	rt     core.RuntimeConfig
	clock  core.Clock
	canvas imageCanvas
	logger *log.Logger
	poll   func(now int64) core.InputFrame

	state  core.GameState
	frames uint64
	reason string
}

func (r *runner) Update() error {
	in := r.poll(r.clock.NowMillis())
	if in.Quit {
		r.reason = "quit"
		return ebiten.Termination
	}

	result := r.game.Step(in)
	r.state = result.State
	r.frames++
	for _, ev := range result.Events {
		r.logger.Debug("event", "kind", ev.Kind, "x", ev.Pos.X, "y", ev.Pos.Y, "frame", r.frames)
	}

	if r.state.GameOver {
		r.reason = "game_over"
		return ebiten.Termination
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.canvas.img = screen
	r.game.Render(&r.canvas)
}

func (r *runner) Layout(_, _ int) (int, int) {
	return r.rt.ScreenW, r.rt.ScreenH
}

// Run opens the window and plays game until it ends or the player presses
// Escape or closes the window. It returns the final state.
func Run(game registry.Game, rt core.RuntimeConfig, opts Options) (core.GameState, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &runner{
		game:   game,
		rt:     rt,
		clock:  core.NewSystemClock(),
		canvas: imageCanvas{w: float64(rt.ScreenW), h: float64(rt.ScreenH)},
		logger: logger,
		poll:   pollInput,
		reason: "closed",
	}

	game.Reset(rt)
	ebiten.SetWindowSize(rt.ScreenW, rt.ScreenH)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(rt.TickRate)

	logger.Info("session started", "game", game.ID(), "seed", rt.Seed, "fps", rt.TickRate)
	err := ebiten.RunGame(r)
	logger.Info("session ended", "reason", r.reason, "frames", r.frames, "score", r.state.Score)

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return r.state, fmt.Errorf("window: run game: %w", err)
	}
	return r.state, nil
}
