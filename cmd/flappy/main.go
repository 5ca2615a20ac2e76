// flappy is a minimal Flappy Bird clone.
//
// Usage:
//
//	flappy           - Play in a window
//	flappy term      - Play in the terminal
//	flappy trace     - Run headless with scripted input and log every draw call
//
// Global flags:
//
//	--config <path>    - Load configuration from a YAML file
//	--seed <value>     - Set RNG seed for reproducible pipes
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/logging"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird - fly between the pipes",
	Long: `A minimal Flappy Bird clone. The bird falls under gravity and jumps
when you press the jump key, while two pipes scroll from right to left.

Controls:
  Space     - Jump
  Q/Esc     - Quit (or close the window)

Examples:
  flappy
  flappy term
  flappy --seed 42 --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(traceCmd)
}

// session holds what every frontend needs to start a game.
type session struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	game     *flappy.Game
	logger   *log.Logger
	closeLog func() error
}

// setup loads configuration, builds the logger and creates the game.
// quiet discards log output unless a log file is configured.
func setup(quiet bool) (*session, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	logger, closeLog, err := logging.New(logging.Options{
		Config: cfg.Log,
		Debug:  flagDebug,
		Quiet:  quiet,
	})
	if err != nil {
		return nil, err
	}

	background, bird, pipe, err := cfg.Colors.Palette()
	if err != nil {
		//nolint:errcheck // Already failing
		closeLog()
		return nil, err
	}

	rc := core.DefaultConfig()
	rc.Seed = cfg.Seed
	if flagSeed != 0 {
		rc.Seed = flagSeed
	}
	seed := rc.ResolveSeed()

	game := flappy.New(flappy.Options{
		Seed:     seed,
		JumpKeys: cfg.Keys.Jump,
		Palette: flappy.Palette{
			Background: background,
			Bird:       bird,
			Pipe:       pipe,
		},
	})

	logger.Info("game created", "config", source, "seed", seed)

	return &session{
		cfg:      cfg,
		runtime:  rc,
		game:     game,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// mustSetup is setup for cobra Run funcs: failures exit with status 1.
func mustSetup(quiet bool) *session {
	s, err := setup(quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}
