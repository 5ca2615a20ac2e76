package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/platform/trace"
)

var (
	flagFrames    int
	flagJumpEvery int
	flagRealtime  bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run headless and log every draw command",
	Long: `Run the frame loop without a display. The jump key is pressed every
--jump-every frames and quit is requested on frame --frames. Draw commands
are logged at debug level, so combine with --debug to see them.

Examples:
  flappy trace --debug --frames 120
  flappy trace --debug --seed 42 --jump-every 15 --realtime`,
	Args: cobra.NoArgs,
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagFrames, "frames", 60, "Frame on which quit is requested")
	traceCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 20, "Press the jump key every N frames (0 = never)")
	traceCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Keep the fixed frame delay instead of running flat out")
}

func runTrace(cmd *cobra.Command, args []string) {
	if flagFrames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --frames must be at least 1")
		os.Exit(1)
	}

	s := mustSetup(false)
	defer s.closeLog() //nolint:errcheck // Best-effort close

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	delay := time.Duration(0)
	if flagRealtime {
		delay = s.runtime.FrameDelay
	}

	rec := trace.NewRecorder(s.logger)
	script := &trace.Script{
		JumpKey:   s.cfg.Keys.Jump[0],
		JumpEvery: flagJumpEvery,
		Frames:    flagFrames,
	}

	start := time.Now()
	err := flappy.Run(ctx, s.game, script, rec, delay)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("trace failed", "error", err)
		return
	}

	bird := s.game.Bird()
	pipes := s.game.Pipes()
	s.logger.Info("trace finished",
		"frames", rec.Frames(),
		"commands", rec.Commands(),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"bird_y", bird.Y,
		"bird_velocity", bird.Velocity,
		"active_pipe", pipes.Active(),
	)
	for i := 0; i < flappy.PipeCount; i++ {
		p := pipes.At(i)
		s.logger.Info("pipe", "slot", i, "x", p.X, "gap_y", p.Y)
	}
}
