package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-dash/internal/config"
	"github.com/vovakirdan/quantum-dash/internal/core"
	"github.com/vovakirdan/quantum-dash/internal/games/quantumdash"
	"github.com/vovakirdan/quantum-dash/internal/loop"
)

// Grid used by --show to rasterize the final frame.
const (
	showCols = 80
	showRows = 24
)

var (
	flagFrames    uint64
	flagAutopilot bool
	flagShow      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run a session without a display on a virtual clock, so thousands of
frames finish instantly. Without --autopilot the player stands still.

Examples:
  qdash sim --seed 1
  qdash sim --frames 10000 --autopilot
  qdash sim --autopilot --show --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagFrames, "frames", 3600, "Maximum frames to simulate (0 = until game over)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the bot play")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	qd, err := config.LoadQuantumDash(s.ConfigPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(s, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig(s, qd)
	game := quantumdash.NewWithConfig(qd)

	var source loop.InputSource
	if flagAutopilot {
		source = quantumdash.NewAutopilot(game, qd)
	}
	var screen *core.Screen
	if flagShow {
		screen = core.NewWorldScreen(showCols, showRows, float64(rt.ScreenW), float64(rt.ScreenH))
	}
	fe := loop.NewHeadless(source, flagFrames, screen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sched := loop.NewScheduler(rt, loop.WithWaiter(&loop.InstantWaiter{}), loop.WithLogger(logger))
	res, err := sched.Run(ctx, game, fe)
	if err != nil {
		return err
	}

	if flagShow {
		fmt.Println(fe.Screen().String())
		fmt.Println()
	}
	fmt.Printf("seed:    %d\n", rt.Seed)
	fmt.Printf("frames:  %d\n", res.Frames)
	fmt.Printf("score:   %d\n", res.Final.Score)
	fmt.Printf("enemies: %d\n", len(game.Snapshot().Enemies))
	fmt.Printf("ended:   %s\n", res.Reason)
	return nil
}
