package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/games/quantumdash"
	"github.com/vovakirdan/quantum-dash/internal/platform/tui"
	"github.com/vovakirdan/quantum-dash/internal/platform/window"
	"github.com/vovakirdan/quantum-dash/internal/registry"
)

// Renderer names accepted by --renderer.
const (
	rendererTUI    = "tui"
	rendererWindow = "window"
)

var flagRenderer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Quantum Dash session. It ends when an enemy touches you.

Controls:
  Arrows/WASD  - Move (diagonals allowed)
  Left click   - Teleport to the cursor (100px range, 0.5s cooldown)
  Q/Esc        - Quit

Renderers:
  tui     - Play in the terminal (default). The 800x600 world is scaled
            onto the terminal grid. Logs go to --log-file only.
  window  - Play in an 800x600 desktop window.

Examples:
  qdash play
  qdash play --renderer window --fps 120
  QDASH_SEED=7 qdash play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTUI, "Renderer: tui or window")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if s.Renderer != rendererTUI && s.Renderer != rendererWindow {
		return fmt.Errorf("unknown renderer %q (want %s or %s)", s.Renderer, rendererTUI, rendererWindow)
	}

	qd, err := config.LoadQuantumDash(s.ConfigPath)
	if err != nil {
		return err
	}
	quantumdash.SetConfig(qd)

	game, err := registry.Create(quantumdash.ID)
	if err != nil {
		return err
	}
	rt := runtimeConfig(s, qd)

	// The alternate screen owns the terminal, so TUI sessions only log to a file.
	var fallback io.Writer = os.Stderr
	if s.Renderer == rendererTUI {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(s, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	var final core.GameState
	switch s.Renderer {
	case rendererWindow:
		final, err = window.Run(game, rt, window.Options{Logger: logger})
	default:
		cols, rows := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cols, rows = w, h
		}
		final, err = tui.Run(game, rt, tui.Options{
			Cols:         cols,
			Rows:         rows,
			HoldWindowMs: qd.Input.HoldWindowMs,
			Logger:       logger,
		})
	}
	if err != nil {
		return err
	}

	if final.GameOver {
		fmt.Printf("Game over! Final score: %d\n", final.Score)
	} else {
		fmt.Printf("Final score: %d\n", final.Score)
	}
	return nil
}
