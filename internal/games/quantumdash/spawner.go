package quantumdash

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
)

// Spawner runs the per-frame Bernoulli spawn trials.
// Trials are per frame, not per second, so spawn frequency follows the tick rate.
type Spawner struct {
	rng     *rand.Rand
	spawn   config.SpawnConfig
	enemy   config.EnemyConfig
	core    config.CoreConfig
	screenW int
	screenH int
}

// NewSpawner creates a spawner for a screenW x screenH world drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.QuantumDashConfig, screenW, screenH int) *Spawner {
	return &Spawner{
		rng:     rng,
		spawn:   cfg.Spawn,
		enemy:   cfg.Enemy,
		core:    cfg.Core,
		screenW: screenW,
		screenH: screenH,
	}
}

// TrySpawnEnemy draws the enemy trial. On success the enemy is placed at a
// uniformly random integer position anywhere on screen, edges included.
func (s *Spawner) TrySpawnEnemy() (*Enemy, bool) {
	if s.rng.Float64() >= s.spawn.EnemyRate {
		return nil, false
	}
	pos := core.V(float64(s.rng.Intn(s.screenW+1)), float64(s.rng.Intn(s.screenH+1)))
	heading := s.rng.Float64() * 2 * math.Pi
	return NewEnemy(pos, heading, s.enemy), true
}

// TrySpawnCore draws the core trial. The draw always happens; a core is
// placed only if it succeeds and fewer than MaxLive cores are live.
// Position is uniform over integers inset from every edge.
func (s *Spawner) TrySpawnCore(live int) (core.Vec, bool) {
	if s.rng.Float64() >= s.spawn.CoreRate || live >= s.core.MaxLive {
		return core.Vec{}, false
	}
	inset := s.core.Inset
	x := inset + s.rng.Intn(s.screenW-2*inset+1)
	y := inset + s.rng.Intn(s.screenH-2*inset+1)
	return core.V(float64(x), float64(y)), true
}
