package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes cfg as YAML with the same layout as the embedded defaults.
func WriteYAML(w io.Writer, cfg QuantumDashConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
