package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/window"
)

func runWindow(cmd *cobra.Command, args []string) {
	s := mustSetup(false)

	s.logger.Info("opening window", "title", s.cfg.Window.Title, "scale", s.cfg.Window.Scale)

	runErr := window.Run(s.game, window.Options{
		Title:      s.cfg.Window.Title,
		Scale:      s.cfg.Window.Scale,
		FrameDelay: s.runtime.FrameDelay,
		QuitKeys:   s.cfg.Keys.Quit,
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
