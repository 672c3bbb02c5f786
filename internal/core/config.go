package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for world size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // World width in pixels
	ScreenH  int   // World height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventCoreSpawned
	EventCoreCollected
	EventTeleported
	EventTeleportRejected
	EventPlayerCaught
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventCoreSpawned:
		return "core_spawned"
	case EventCoreCollected:
		return "core_collected"
	case EventTeleported:
		return "teleported"
	case EventTeleportRejected:
		return "teleport_rejected"
	case EventPlayerCaught:
		return "player_caught"
	default:
		return "unknown"
	}
}

// Event is a single occurrence within a tick, located in world space.
type Event struct {
	Kind EventKind
	Pos  Vec
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
