package config

import (
	_ "embed"
)

//go:embed defaults/quantumdash.yaml
var defaultQuantumDashYAML []byte

// DefaultQuantumDash returns the default Quantum Dash configuration.
// Values mirror defaults/quantumdash.yaml.
func DefaultQuantumDash() QuantumDashConfig {
	return QuantumDashConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Player: PlayerConfig{
			Size:               20,
			Speed:              5,
			TeleportDistance:   100,
			TeleportCooldownMs: 500,
		},
		Enemy: EnemyConfig{
			Size:  25,
			Speed: 2,
		},
		Core: CoreConfig{
			Size:    15,
			Points:  10,
			MaxLive: 3,
			Inset:   50,
		},
		Spawn: SpawnConfig{
			EnemyRate: 0.03,
			CoreRate:  0.02,
		},
		Input: InputConfig{
			HoldWindowMs: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultQuantumDashYAML
}
