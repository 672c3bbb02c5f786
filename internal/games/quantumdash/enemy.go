package quantumdash

import (
	"math"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
)

// Enemy chases the player with pure pursuit: no inertia, constant speed.
type Enemy struct {
	Pos     core.Vec
	Heading float64 // Radians, recomputed every move

	size  float64
	speed float64
}

// NewEnemy creates an enemy at pos facing heading.
func NewEnemy(pos core.Vec, heading float64, cfg config.EnemyConfig) *Enemy {
	return &Enemy{
		Pos:     pos,
		Heading: heading,
		size:    cfg.Size,
		speed:   cfg.Speed,
	}
}

// MoveTowards turns to face target and advances one step along that bearing.
func (e *Enemy) MoveTowards(target core.Vec) {
	e.Heading = math.Atan2(target.Y-e.Pos.Y, target.X-e.Pos.X)
	e.Pos.X += math.Cos(e.Heading) * e.speed
	e.Pos.Y += math.Sin(e.Heading) * e.speed
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() core.Rect {
	return core.RectCentered(e.Pos, e.size)
}
