package quantumdash

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/registry"
)

const frameMs = 16

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameResetPlacesPlayerAtCenter(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5})

	snap := g.Snapshot()
	if snap.Player != core.V(400, 300) {
		t.Errorf("player should start at (400, 300), got %+v", snap.Player)
	}
	if snap.WorldW != 800 || snap.WorldH != 600 {
		t.Errorf("zero screen size should fall back to the configured world, got %vx%v", snap.WorldW, snap.WorldH)
	}
	if snap.Score != 0 || snap.GameOver || len(snap.Enemies) != 0 || len(snap.Cores) != 0 {
		t.Errorf("fresh session should be empty, got %+v", snap)
	}
}

func TestEnemyOnPlayerEndsFirstFrame(t *testing.T) {
	g := newQuietGame(t)
	g.addEnemy(core.V(400, 300))

	res := g.Step(core.NewInputFrame(0))

	if !res.State.GameOver {
		t.Fatal("enemy spawned on the player should end the session on the first check")
	}
	if !hasEvent(res.Events, core.EventPlayerCaught) {
		t.Error("expected a player_caught event")
	}
}

func TestStepCollectsCore(t *testing.T) {
	g := newQuietGame(t)
	g.cores.Add(core.V(410, 305), 15)

	res := g.Step(core.NewInputFrame(0))

	if res.State.Score != 10 || res.State.GameOver {
		t.Errorf("expected score 10 and running, got %+v", res.State)
	}
	if !hasEvent(res.Events, core.EventCoreCollected) {
		t.Error("expected a core_collected event")
	}
}

func TestStepTeleportsBeforeMoving(t *testing.T) {
	g := newQuietGame(t)

	in := core.NewInputFrame(1000)
	in.Click(core.V(450, 300))
	in.Set(core.DirRight)
	res := g.Step(in)

	if got := g.Snapshot().Player; got != core.V(455, 300) {
		t.Errorf("expected teleport then move to (455, 300), got %+v", got)
	}
	if !hasEvent(res.Events, core.EventTeleported) {
		t.Error("expected a teleported event")
	}
}

func TestStepTeleportCooldownAcrossFrames(t *testing.T) {
	g := newQuietGame(t)

	first := core.NewInputFrame(0)
	first.Click(core.V(420, 300))
	g.Step(first)

	second := core.NewInputFrame(100)
	second.Click(core.V(430, 300))
	res := g.Step(second)

	if got := g.Snapshot().Player; got != core.V(420, 300) {
		t.Errorf("second teleport within cooldown should be ignored, player at %+v", got)
	}
	if !hasEvent(res.Events, core.EventTeleportRejected) {
		t.Error("expected a teleport_rejected event")
	}
}

func TestEnemiesChasePlayerEachStep(t *testing.T) {
	g := newQuietGame(t)
	e := g.addEnemy(core.V(100, 300))

	g.Step(core.NewInputFrame(0))

	if e.Pos != core.V(102, 300) {
		t.Errorf("enemy should step toward the player, got %+v", e.Pos)
	}
}

func TestCoreCapNeverExceeded(t *testing.T) {
	cfg := config.DefaultQuantumDash()
	cfg.Spawn.EnemyRate = 0
	cfg.Spawn.CoreRate = 1

	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: 11})

	for i := 0; i < 500; i++ {
		g.Step(core.NewInputFrame(int64(i * frameMs)))
		if n := g.cores.Len(); n > 3 {
			t.Fatalf("live cores = %d at frame %d", n, i)
		}
	}
	if g.cores.Len() == 0 {
		t.Error("rate 1 should keep the core set filled")
	}
}

func TestScoreIncreasesInTens(t *testing.T) {
	cfg := config.DefaultQuantumDash()
	cfg.Spawn.EnemyRate = 0
	cfg.Spawn.CoreRate = 0.3

	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: 3})
	bot := NewAutopilot(g, cfg)

	prev := 0
	for i := 0; i < 3000; i++ {
		res := g.Step(bot.Next(int64(i * frameMs)))
		if res.State.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, res.State.Score)
		}
		if res.State.Score%10 != 0 || res.State.Score-prev > 30 {
			t.Fatalf("unexpected score jump %d -> %d", prev, res.State.Score)
		}
		prev = res.State.Score
	}
	if prev == 0 {
		t.Error("autopilot should collect at least one core without enemies")
	}
}

func TestGameOverIgnoresFurtherSteps(t *testing.T) {
	g := newQuietGame(t)
	g.addEnemy(core.V(400, 300))
	g.Step(core.NewInputFrame(0))

	before := g.Snapshot()
	in := core.NewInputFrame(16)
	in.Set(core.DirLeft)
	g.Step(in)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("a terminated session must not change")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultQuantumDash()
		g := NewWithConfig(cfg)
		g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 12345})
		bot := NewAutopilot(g, cfg)
		for i := 0; i < 1200; i++ {
			if g.Step(bot.Next(int64(i * frameMs))).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\nrun1=%+v\nrun2=%+v", s1, s2)
	}
	if s1.Tick == 0 {
		t.Error("expected the session to advance")
	}
}

func TestGameSeedChangesSpawns(t *testing.T) {
	spawnsFor := func(seed int64) []core.Vec {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: seed})
		for i := 0; i < 200 && !g.State().GameOver; i++ {
			g.Step(core.NewInputFrame(int64(i * frameMs)))
		}
		return g.Snapshot().Enemies
	}

	if reflect.DeepEqual(spawnsFor(1), spawnsFor(2)) {
		t.Error("different seeds should produce different enemy spawns")
	}
}

func TestGameReset(t *testing.T) {
	g := newQuietGame(t)
	g.addEnemy(core.V(400, 300))
	g.cores.Add(core.V(100, 100), 15)
	g.Step(core.NewInputFrame(0))

	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: 1})

	snap := g.Snapshot()
	if snap.GameOver || snap.Score != 0 || snap.Tick != 0 || len(snap.Enemies) != 0 || len(snap.Cores) != 0 {
		t.Errorf("Reset should clear the session, got %+v", snap)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newQuietGame(t)
	g.cores.Add(core.V(100, 100), 15)
	g.addEnemy(core.V(700, 500))

	screen := core.NewWorldScreen(80, 24, 800, 600)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("Row(0) = %q, expected score text", screen.Row(0))
	}
	if strings.Contains(screen.String(), "Teleport") {
		t.Error("no cooldown text before the first teleport")
	}
	if c := screen.GetCell(40, 12); c.Rune != core.CircleGlyph || c.Color != core.ColorCyan {
		t.Errorf("player cell = %+v, expected cyan circle", c)
	}
	if c := screen.GetCell(10, 4); c.Color != core.ColorPurple {
		t.Errorf("core cell = %+v, expected purple", c)
	}
	if c := screen.GetCell(70, 20); c.Color != core.ColorRed {
		t.Errorf("enemy cell = %+v, expected red", c)
	}
}

func TestRenderCooldownText(t *testing.T) {
	g := newQuietGame(t)
	screen := core.NewWorldScreen(80, 24, 800, 600)

	in := core.NewInputFrame(1000)
	in.Click(core.V(420, 300))
	g.Step(in)
	g.Render(screen)
	if !strings.Contains(screen.Row(1), "Teleport: 0.5s") {
		t.Errorf("Row(1) = %q, expected full cooldown text", screen.Row(1))
	}

	g.Step(core.NewInputFrame(1300))
	g.Render(screen)
	if !strings.Contains(screen.Row(1), "Teleport: 0.2s") {
		t.Errorf("Row(1) = %q, expected 0.2s remaining", screen.Row(1))
	}

	g.Step(core.NewInputFrame(1500))
	g.Render(screen)
	if strings.Contains(screen.String(), "Teleport") {
		t.Error("cooldown text should disappear once the teleport is ready")
	}
}

func TestRadiusUsesWholePixels(t *testing.T) {
	if radius(25) != 12 || radius(15) != 7 || radius(20) != 10 {
		t.Errorf("radius() = %v/%v/%v, expected 12/7/10", radius(25), radius(15), radius(20))
	}
	if radius(0) != 0 {
		t.Errorf("radius(0) = %v, expected 0", radius(0))
	}
}

func TestRegisteredInRegistry(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q should be registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Quantum Dash" {
		t.Errorf("Title() = %q", g.Title())
	}
}
