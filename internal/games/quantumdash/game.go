// Package quantumdash implements Quantum Dash: dodge pursuing enemies,
// collect cores for score and blink out of trouble with a short teleport.
package quantumdash

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "quantumdash"

// HUD placement in world pixels.
const (
	hudX         = 10
	scoreY       = 10
	cooldownY    = 40
	msPerSecond  = 1000.0
	circleRadius = 0.5 // Fraction of the footprint size drawn as the circle radius
)

// Package-level config used by the registry factory.
var sessionConfig = config.DefaultQuantumDash()

// SetConfig sets the tuning used by games created through the registry.
func SetConfig(cfg config.QuantumDashConfig) {
	sessionConfig = cfg
}

// Game is one Quantum Dash session. A session that ended stays ended;
// callers start a new one with Reset.
type Game struct {
	cfg     config.QuantumDashConfig
	runtime core.RuntimeConfig

	player  *Player
	enemies []*Enemy
	cores   CoreSet
	spawner *Spawner

	score    int
	gameOver bool
	tick     uint64
	now      int64 // Timestamp of the latest step, ms
	events   []core.Event
}

// New creates a game with the default tuning.
func New() *Game {
	return NewWithConfig(config.DefaultQuantumDash())
}

// NewWithConfig creates a game with the given tuning.
func NewWithConfig(cfg config.QuantumDashConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Quantum Dash"
}

// Reset starts a fresh session. A non-positive screen size in cfg falls back
// to the configured world size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW = g.cfg.World.Width
		cfg.ScreenH = g.cfg.World.Height
	}
	g.runtime = cfg

	w, h := float64(cfg.ScreenW), float64(cfg.ScreenH)
	g.player = NewPlayer(core.V(float64(cfg.ScreenW/2), float64(cfg.ScreenH/2)), g.cfg.Player, w, h)
	g.enemies = nil
	g.cores.Reset()
	g.spawner = NewSpawner(rand.New(rand.NewSource(cfg.Seed)), g.cfg, cfg.ScreenW, cfg.ScreenH)

	g.score = 0
	g.gameOver = false
	g.tick = 0
	g.now = 0
	g.events = nil
}

// Step advances the session by one frame: teleport clicks, movement,
// spawning, pursuit, then collision and scoring.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.now = in.Now
	g.events = nil

	for _, target := range in.Clicks {
		if g.player.Teleport(target, in.Now) {
			g.emit(core.EventTeleported, target)
		} else {
			g.emit(core.EventTeleportRejected, target)
		}
	}

	g.player.Move(in.Held)

	g.spawn()

	for _, e := range g.enemies {
		e.MoveTowards(g.player.Pos)
	}

	if !g.CheckCollisions() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// spawn runs both spawn trials for this frame.
func (g *Game) spawn() {
	if e, ok := g.spawner.TrySpawnEnemy(); ok {
		g.enemies = append(g.enemies, e)
		g.emit(core.EventEnemySpawned, e.Pos)
	}
	if pos, ok := g.spawner.TrySpawnCore(g.cores.Len()); ok {
		g.cores.Add(pos, g.cfg.Core.Size)
		g.emit(core.EventCoreSpawned, pos)
	}
}

func (g *Game) emit(kind core.EventKind, pos core.Vec) {
	g.events = append(g.events, core.Event{Kind: kind, Pos: pos})
}

// Render draws the current game state onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	dst.FillCircle(g.player.Pos.X, g.player.Pos.Y, radius(g.cfg.Player.Size), core.ColorCyan)
	for _, e := range g.enemies {
		dst.FillCircle(e.Pos.X, e.Pos.Y, radius(g.cfg.Enemy.Size), core.ColorRed)
	}
	for _, c := range g.cores.All() {
		dst.FillCircle(c.Pos.X, c.Pos.Y, radius(c.Size), core.ColorPurple)
	}

	dst.DrawText(hudX, scoreY, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	if remaining := g.player.CooldownRemaining(g.now); remaining > 0 {
		text := fmt.Sprintf("Teleport: %.1fs", float64(remaining)/msPerSecond)
		dst.DrawText(hudX, cooldownY, text, core.ColorWhite)
	}
}

// radius matches the sprite radius to the whole-pixel half of the footprint.
func radius(size float64) float64 {
	return math.Floor(size * circleRadius)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return NewWithConfig(sessionConfig)
	})
}
