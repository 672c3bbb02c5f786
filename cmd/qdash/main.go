// qdash is Quantum Dash: dodge pursuing enemies, collect cores and teleport
// out of trouble, in the terminal or in a desktop window.
//
// Usage:
//
//	qdash play               - Play in the terminal (or --renderer window)
//	qdash sim                - Run a headless session, optionally with the autopilot
//	qdash list               - List available games
//	qdash config             - Print the default tuning
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Tuning file (.yaml or .toml)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
//
// Every global flag can also be set through a QDASH_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/quantum-dash/internal/games/quantumdash"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qdash",
	Short: "Quantum Dash - dodge, collect, teleport",
	Long: `Quantum Dash is a small arcade game. Enemies spawn at random and chase
you; purple cores are worth points. Click within range to teleport, once
every half second.

Available commands:
  play     - Play a session
  sim      - Run a headless session
  list     - Show all available games
  config   - Print the default tuning

Examples:
  qdash play
  qdash play --renderer window
  qdash play --seed 42 --config ./quantumdash.toml
  qdash sim --frames 3600 --autopilot --show`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// settings are the global options after merging flags over QDASH_* variables.
type settings struct {
	FPS        int
	Seed       int64
	Renderer   string
	ConfigPath string
	LogLevel   string
	LogFile    string
}

// loadSettings reads the environment and lets explicitly set flags win.
func loadSettings(cmd *cobra.Command) (settings, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return settings{}, err
	}

	s := settings{
		FPS:        e.FPS,
		Seed:       e.Seed,
		Renderer:   e.Renderer,
		ConfigPath: e.ConfigPath,
		LogLevel:   e.LogLevel,
		LogFile:    e.LogFile,
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.FPS = flagFPS
	}
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("config") {
		s.ConfigPath = flagConfig
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if flags.Changed("log-file") {
		s.LogFile = flagLogFile
	}
	if flags.Lookup("renderer") != nil && flags.Changed("renderer") {
		s.Renderer = flagRenderer
	}
	return s, nil
}

// runtimeConfig builds the session parameters from the tuning and settings.
func runtimeConfig(s settings, qd config.QuantumDashConfig) core.RuntimeConfig {
	rt := core.RuntimeConfig{
		ScreenW:  qd.World.Width,
		ScreenH:  qd.World.Height,
		TickRate: qd.World.TickRate,
		Seed:     s.Seed,
	}
	if s.FPS > 0 {
		rt.TickRate = s.FPS
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// newLogger creates the session logger. Every line carries a session id.
// The returned close function releases the log file, if one was opened.
func newLogger(s settings, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}

	out, closeFn := fallback, func() error { return nil }
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "qdash",
		Level:           level,
	})
	return logger.With("session", uuid.NewString()), closeFn, nil
}
