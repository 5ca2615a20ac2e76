// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy/internal/config"
)

// Options controls where and how much is logged.
type Options struct {
	Config config.LogConfig
	Debug  bool      // Forces debug level
	Quiet  bool      // Discard output unless a log file is configured
	Output io.Writer // Defaults to stderr
}

// New creates a logger tagged with a fresh run ID.
// The returned close function releases the log file, if one was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	closer := func() error { return nil }

	level, err := log.ParseLevel(opts.Config.Level)
	if err != nil {
		return nil, closer, fmt.Errorf("logging: %w", err)
	}
	if opts.Debug {
		level = log.DebugLevel
	}

	var out io.Writer = os.Stderr
	switch {
	case opts.Config.File != "":
		dir := filepath.Dir(opts.Config.File)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, closer, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
		}
		f, err := os.OpenFile(opts.Config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("logging: cannot open %s: %w", opts.Config.File, err)
		}
		out = f
		closer = f.Close
	case opts.Quiet:
		out = io.Discard
	case opts.Output != nil:
		out = opts.Output
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closer, nil
}
