package loop

import "github.com/vovakirdan/quantum-dash/internal/core"

// InputSource produces the input for each frame, for example a bot.
type InputSource interface {
	Next(now int64) core.InputFrame
}

// Headless is a frontend without a terminal or window. It takes input from
// an InputSource and, when given a screen, rasterizes every frame into it.
type Headless struct {
	source    InputSource
	maxFrames uint64
	screen    *core.Screen

	polled uint64
	closed bool
}

// NewHeadless creates a headless frontend. A nil source yields empty frames,
// maxFrames of zero means no limit and a nil screen skips rendering.
func NewHeadless(source InputSource, maxFrames uint64, screen *core.Screen) *Headless {
	return &Headless{
		source:    source,
		maxFrames: maxFrames,
		screen:    screen,
	}
}

// Poll returns the next input frame, or a quit frame once the limit is hit.
func (h *Headless) Poll(now int64) (core.InputFrame, error) {
	if h.maxFrames > 0 && h.polled >= h.maxFrames {
		in := core.NewInputFrame(now)
		in.Quit = true
		return in, nil
	}
	h.polled++
	if h.source == nil {
		return core.NewInputFrame(now), nil
	}
	in := h.source.Next(now)
	in.Now = now
	return in, nil
}

// Present renders into the screen, if any.
func (h *Headless) Present(r Renderer) error {
	if h.screen != nil {
		r.Render(h.screen)
	}
	return nil
}

// Close marks the frontend closed.
func (h *Headless) Close() error {
	h.closed = true
	return nil
}

// Screen returns the last presented frame.
func (h *Headless) Screen() *core.Screen {
	return h.screen
}

// Closed reports whether the scheduler closed the frontend.
func (h *Headless) Closed() bool {
	return h.closed
}
