package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-dash/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning",
	Long: `Print the built-in tuning. Save it under ~/.qdash/configs/quantumdash.yaml
or ./configs/quantumdash.yaml, or pass it with --config, to override values.
Files only need the keys they change.

Examples:
  qdash config > quantumdash.yaml
  qdash config --format toml > quantumdash.toml
  qdash config --config ./quantumdash.toml   # print the effective tuning`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	switch flagFormat {
	case "yaml":
		if s.ConfigPath == "" {
			_, err = os.Stdout.Write(config.DefaultYAML())
			return err
		}
		qd, err := config.LoadQuantumDash(s.ConfigPath)
		if err != nil {
			return err
		}
		return config.WriteYAML(os.Stdout, qd)
	case "toml":
		qd, err := config.LoadQuantumDash(s.ConfigPath)
		if err != nil {
			return err
		}
		return toml.NewEncoder(os.Stdout).Encode(qd)
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}
}
