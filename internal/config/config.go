// Package config provides YAML/TOML-based game tuning and environment
// overrides for Quantum Dash.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// QuantumDashConfig contains all tuning for the Quantum Dash game.
type QuantumDashConfig struct {
	World  WorldConfig  `yaml:"world" toml:"world"`
	Player PlayerConfig `yaml:"player" toml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy" toml:"enemy"`
	Core   CoreConfig   `yaml:"core" toml:"core"`
	Spawn  SpawnConfig  `yaml:"spawn" toml:"spawn"`
	Input  InputConfig  `yaml:"input" toml:"input"`
}

// WorldConfig defines the playfield and frame rate.
type WorldConfig struct {
	Width    int `yaml:"width" toml:"width"`         // Pixels
	Height   int `yaml:"height" toml:"height"`       // Pixels
	TickRate int `yaml:"tick_rate" toml:"tick_rate"` // Frames per second
}

// PlayerConfig defines the avatar and its teleport ability.
type PlayerConfig struct {
	Size               float64 `yaml:"size" toml:"size"`
	Speed              float64 `yaml:"speed" toml:"speed"` // Pixels per frame per axis
	TeleportDistance   float64 `yaml:"teleport_distance" toml:"teleport_distance"`
	TeleportCooldownMs int64   `yaml:"teleport_cooldown_ms" toml:"teleport_cooldown_ms"`
}

// EnemyConfig defines the pursuers.
type EnemyConfig struct {
	Size  float64 `yaml:"size" toml:"size"`
	Speed float64 `yaml:"speed" toml:"speed"` // Pixels per frame along the heading
}

// CoreConfig defines the collectibles.
type CoreConfig struct {
	Size    float64 `yaml:"size" toml:"size"`
	Points  int     `yaml:"points" toml:"points"`
	MaxLive int     `yaml:"max_live" toml:"max_live"`
	Inset   int     `yaml:"inset" toml:"inset"` // Spawn margin from each edge
}

// SpawnConfig defines the per-frame Bernoulli spawn probabilities.
type SpawnConfig struct {
	EnemyRate float64 `yaml:"enemy_rate" toml:"enemy_rate"`
	CoreRate  float64 `yaml:"core_rate" toml:"core_rate"`
}

// InputConfig tunes input handling on terminals, which report key presses
// but never releases.
type InputConfig struct {
	HoldWindowMs int64 `yaml:"hold_window_ms" toml:"hold_window_ms"`
}

// Validate reports the first out-of-range field.
func (c QuantumDashConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.World.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.World.TickRate)
	case c.Player.Size <= 0 || c.Enemy.Size <= 0 || c.Core.Size <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalidConfig)
	case c.Player.Speed < 0 || c.Enemy.Speed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.Player.TeleportDistance < 0 || c.Player.TeleportCooldownMs < 0:
		return fmt.Errorf("%w: teleport distance and cooldown must not be negative", ErrInvalidConfig)
	case c.Core.Points < 0 || c.Core.MaxLive < 0:
		return fmt.Errorf("%w: core points and max_live must not be negative", ErrInvalidConfig)
	case c.Core.Inset < 0 || 2*c.Core.Inset > c.World.Width || 2*c.Core.Inset > c.World.Height:
		return fmt.Errorf("%w: core inset %d does not fit the world", ErrInvalidConfig, c.Core.Inset)
	case !isProbability(c.Spawn.EnemyRate) || !isProbability(c.Spawn.CoreRate):
		return fmt.Errorf("%w: spawn rates must be within [0, 1]", ErrInvalidConfig)
	case c.Input.HoldWindowMs < 0:
		return fmt.Errorf("%w: hold_window_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
