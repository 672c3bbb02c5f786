package quantumdash

import "github.com/vovakirdan/quantum-dash/internal/core"

// CheckCollisions collects every core touching the player, then reports
// whether the session keeps running. Any enemy touching the player ends it,
// whatever happened to the cores this frame. Enemies are never removed.
func (g *Game) CheckCollisions() bool {
	playerRect := g.player.Rect()

	// Snapshot the IDs first so removals cannot disturb the iteration.
	for _, id := range g.cores.IDs() {
		c, ok := g.cores.Get(id)
		if !ok || !playerRect.Intersects(c.Rect()) {
			continue
		}
		g.cores.Remove(id)
		g.score += g.cfg.Core.Points
		g.emit(core.EventCoreCollected, c.Pos)
	}

	for _, e := range g.enemies {
		if playerRect.Intersects(e.Rect()) {
			g.emit(core.EventPlayerCaught, e.Pos)
			return false
		}
	}
	return true
}
