package quantumdash

import "github.com/vovakirdan/quantum-dash/internal/core"

// Snapshot captures the complete game state for determinism testing and autopilot input.
type Snapshot struct {
	Tick       uint64
	Score      int
	GameOver   bool
	Player     core.Vec
	CooldownMs int64 // Remaining teleport cooldown at the latest step
	Enemies    []core.Vec
	Cores      []core.Vec
	WorldW     float64
	WorldH     float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]core.Vec, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = e.Pos
	}
	cores := make([]core.Vec, 0, g.cores.Len())
	for _, c := range g.cores.All() {
		cores = append(cores, c.Pos)
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		GameOver:   g.gameOver,
		Player:     g.player.Pos,
		CooldownMs: g.player.CooldownRemaining(g.now),
		Enemies:    enemies,
		Cores:      cores,
		WorldW:     float64(g.runtime.ScreenW),
		WorldH:     float64(g.runtime.ScreenH),
	}
}
