package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The 800x600 playfield is scaled onto the
terminal grid. Logs go to --log-file (or log.file in the config) since the
game takes over the screen.

Examples:
  flappy term
  flappy term --log-file /tmp/flappy.log --debug`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func runTerm(cmd *cobra.Command, args []string) {
	s := mustSetup(true)

	// Get terminal size; Bubble Tea sends the real size once it starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s.logger.Info("starting terminal UI", "width", width, "height", height)

	runErr := tui.Run(s.game, tui.Options{
		Width:      width,
		Height:     height,
		FrameDelay: s.runtime.FrameDelay,
		Fill:       s.cfg.Terminal.FillRune(),
		ShowHelp:   s.cfg.Terminal.ShowHelp,
		Keys:       tui.NewKeyMap(s.cfg.Keys.Jump, s.cfg.Keys.Quit),
		Logger:     s.logger,
	})

	// Close log before potential exit
	//nolint:errcheck // Best-effort close
	s.closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
