package quantumdash

import (
	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
)

// Player is the avatar. It moves with the held directions and can teleport
// a short distance once per cooldown.
type Player struct {
	Pos core.Vec

	size          float64
	speed         float64
	teleportRange float64
	cooldownMs    int64
	worldW        float64
	worldH        float64

	lastTeleport int64
	teleported   bool // false until the first successful teleport
}

// NewPlayer creates a player at pos inside a worldW x worldH playfield.
func NewPlayer(pos core.Vec, cfg config.PlayerConfig, worldW, worldH float64) *Player {
	return &Player{
		Pos:           pos,
		size:          cfg.Size,
		speed:         cfg.Speed,
		teleportRange: cfg.TeleportDistance,
		cooldownMs:    cfg.TeleportCooldownMs,
		worldW:        worldW,
		worldH:        worldH,
	}
}

// Move shifts the player by its speed along every held direction whose
// destination stays at least half a sprite away from that direction's edge.
// Diagonals are not normalized.
func (p *Player) Move(held core.Direction) {
	half := p.size / 2

	if held.Has(core.DirLeft) && p.Pos.X-p.speed >= half {
		p.Pos.X -= p.speed
	}
	if held.Has(core.DirRight) && p.Pos.X+p.speed <= p.worldW-half {
		p.Pos.X += p.speed
	}
	if held.Has(core.DirUp) && p.Pos.Y-p.speed >= half {
		p.Pos.Y -= p.speed
	}
	if held.Has(core.DirDown) && p.Pos.Y+p.speed <= p.worldH-half {
		p.Pos.Y += p.speed
	}
}

// Teleport jumps exactly to target when the cooldown has elapsed and target
// is within range. Rejections leave position and cooldown untouched.
func (p *Player) Teleport(target core.Vec, now int64) bool {
	if p.teleported && now-p.lastTeleport < p.cooldownMs {
		return false
	}
	if core.Dist(p.Pos, target) > p.teleportRange {
		return false
	}
	p.Pos = target
	p.lastTeleport = now
	p.teleported = true
	return true
}

// CooldownRemaining returns the milliseconds until the next teleport can
// succeed, or 0 when it is ready.
func (p *Player) CooldownRemaining(now int64) int64 {
	if !p.teleported {
		return 0
	}
	remaining := p.cooldownMs - (now - p.lastTeleport)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TeleportRange returns the maximum teleport distance.
func (p *Player) TeleportRange() float64 {
	return p.teleportRange
}

// Size returns the footprint side length.
func (p *Player) Size() float64 {
	return p.size
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.RectCentered(p.Pos, p.size)
}
