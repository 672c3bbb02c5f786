package loop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/registry"
)

// ErrFrontend wraps every failure reported by a frontend. Such failures are
// fatal to the session.
var ErrFrontend = errors.New("loop: frontend failure")

// Renderer is anything that can draw itself onto a canvas.
type Renderer interface {
	Render(dst core.Canvas)
}

// Frontend is the platform side of a session: it gathers input and shows
// frames. Now is the scheduler's clock in milliseconds.
type Frontend interface {
	Poll(now int64) (core.InputFrame, error)
	Present(r Renderer) error
	Close() error
}

// State is the scheduler's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StopReason tells why a run ended.
type StopReason int

const (
	StopQuit StopReason = iota
	StopGameOver
	StopCancelled
	StopError
)

func (r StopReason) String() string {
	switch r {
	case StopQuit:
		return "quit"
	case StopGameOver:
		return "game_over"
	case StopCancelled:
		return "cancelled"
	case StopError:
		return "error"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result summarizes a finished run.
type Result struct {
	Frames  uint64
	Skipped uint64
	Final   core.GameState
	Reason  StopReason
}

// Scheduler runs one session at a fixed tick rate.
type Scheduler struct {
	rt     core.RuntimeConfig
	waiter Waiter
	logger *log.Logger
	state  State
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWaiter replaces the real-time waiter.
func WithWaiter(w Waiter) Option {
	return func(s *Scheduler) {
		s.waiter = w
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

// NewScheduler creates a scheduler for sessions started with rt.
func NewScheduler(rt core.RuntimeConfig, opts ...Option) *Scheduler {
	s := &Scheduler{
		rt:    rt,
		state: StateTerminated,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.waiter == nil {
		s.waiter = NewRealWaiter()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// Run resets game and plays it until the player quits, the game ends, ctx is
// cancelled or the frontend fails. The frontend is closed in every case.
func (s *Scheduler) Run(ctx context.Context, game registry.Game, fe Frontend) (res Result, err error) {
	game.Reset(s.rt)
	s.state = StateRunning

	pacer := NewPacer(s.rt.TickRate)
	pacer.Start(s.waiter.Now())

	s.logger.Info("session started", "game", game.ID(), "seed", s.rt.Seed, "fps", s.rt.TickRate)

	defer func() {
		s.state = StateTerminated
		res.Skipped = pacer.Skipped()
		if cerr := fe.Close(); cerr != nil && err == nil {
			res.Reason = StopError
			err = fmt.Errorf("%w: close: %w", ErrFrontend, cerr)
		}
		s.logger.Info("session ended",
			"reason", res.Reason,
			"frames", res.Frames,
			"score", res.Final.Score,
			"skipped", res.Skipped,
		)
	}()

	for {
		if ctx.Err() != nil {
			res.Reason = StopCancelled
			return res, nil
		}

		in, err := fe.Poll(s.waiter.Now().Milliseconds())
		if err != nil {
			res.Reason = StopError
			return res, fmt.Errorf("%w: poll: %w", ErrFrontend, err)
		}
		if in.Quit {
			res.Reason = StopQuit
			return res, nil
		}

		step := game.Step(in)
		res.Frames++
		res.Final = step.State
		for _, ev := range step.Events {
			s.logger.Debug("event", "kind", ev.Kind, "x", ev.Pos.X, "y", ev.Pos.Y, "frame", res.Frames)
		}

		if err := fe.Present(game); err != nil {
			res.Reason = StopError
			return res, fmt.Errorf("%w: present: %w", ErrFrontend, err)
		}

		if step.State.GameOver {
			res.Reason = StopGameOver
			return res, nil
		}

		if err := s.waiter.Wait(ctx, pacer.Next(s.waiter.Now())); err != nil {
			res.Reason = StopCancelled
			return res, nil
		}
	}
}
