package quantumdash

import (
	"math"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
)

// dangerFactor scales the teleport range into the radius at which the
// autopilot starts fleeing.
const dangerFactor = 0.8

// Autopilot is a simple bot that plays a session. It flees the nearest enemy
// when one gets close, otherwise it heads for the nearest core, teleporting
// whenever the cooldown allows. It reads the session through Snapshot only.
type Autopilot struct {
	game          *Game
	teleportRange float64
	dangerRadius  float64
	deadzone      float64
	margin        float64
}

// NewAutopilot creates a bot driving g.
func NewAutopilot(g *Game, cfg config.QuantumDashConfig) *Autopilot {
	return &Autopilot{
		game:          g,
		teleportRange: cfg.Player.TeleportDistance,
		dangerRadius:  cfg.Player.TeleportDistance * dangerFactor,
		deadzone:      cfg.Player.Speed / 2,
		margin:        cfg.Player.Size / 2,
	}
}

// Next returns the input for the frame polled at now.
func (a *Autopilot) Next(now int64) core.InputFrame {
	s := a.game.Snapshot()
	in := core.NewInputFrame(now)
	if s.GameOver {
		return in
	}
	ready := s.CooldownMs == 0

	if threat, d := nearest(s.Player, s.Enemies); d <= a.dangerRadius {
		away := s.Player.Sub(threat)
		if ready && d > 0 {
			jump := away.Scale(a.teleportRange * 0.9 / d)
			in.Click(a.clamp(s.Player.Add(jump), s))
		}
		in.Held = a.steer(away)
		return in
	}

	if target, d := nearest(s.Player, s.Cores); !math.IsInf(d, 1) {
		if ready && d <= a.teleportRange {
			in.Click(target)
			return in
		}
		in.Held = a.steer(target.Sub(s.Player))
	}
	return in
}

// steer converts a desired displacement into held directions.
func (a *Autopilot) steer(v core.Vec) core.Direction {
	var d core.Direction
	switch {
	case v.X < -a.deadzone:
		d |= core.DirLeft
	case v.X > a.deadzone:
		d |= core.DirRight
	}
	switch {
	case v.Y < -a.deadzone:
		d |= core.DirUp
	case v.Y > a.deadzone:
		d |= core.DirDown
	}
	return d
}

// clamp keeps a teleport target inside the playfield margins.
func (a *Autopilot) clamp(p core.Vec, s Snapshot) core.Vec {
	return core.V(
		core.ClampF(p.X, a.margin, s.WorldW-a.margin),
		core.ClampF(p.Y, a.margin, s.WorldH-a.margin),
	)
}

// nearest returns the closest point to from, or +Inf distance if there is none.
func nearest(from core.Vec, points []core.Vec) (core.Vec, float64) {
	best, bestD := core.Vec{}, math.Inf(1)
	for _, p := range points {
		if d := core.Dist(from, p); d < bestD {
			best, bestD = p, d
		}
	}
	return best, bestD
}
