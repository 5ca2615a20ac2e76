// Package window runs the game in a desktop window through ebiten.
package window

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Options configures the window frontend.
type Options struct {
	Title      string
	Scale      float64 // Window size relative to the playfield
	FrameDelay time.Duration
	QuitKeys   []string
	Logger     *log.Logger
}

// Game adapts a flappy.Game to ebiten.Game.
// Update runs input and simulation; Draw issues the frame's draw commands.
type Game struct {
	game     *flappy.Game
	queue    *core.EventQueue
	quitKeys map[string]bool
	renderer *ImageRenderer
	pressed  []ebiten.Key
	logger   *log.Logger
}

// NewGame wraps game for ebiten.
func NewGame(game *flappy.Game, opts Options) *Game {
	quitKeys := make(map[string]bool, len(opts.QuitKeys))
	for _, k := range opts.QuitKeys {
		quitKeys[core.NormalizeKey(k)] = true
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		game:     game,
		queue:    core.NewEventQueue(),
		quitKeys: quitKeys,
		renderer: &ImageRenderer{},
		logger:   logger,
	}
}

// Update collects this tick's input events and advances the simulation.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.QuitEvent())
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		name := core.NormalizeKey(k.String())
		if g.quitKeys[name] {
			g.queue.Push(core.QuitEvent())
			continue
		}
		g.queue.Push(core.KeyDown(name))
	}

	flappy.Step(g.game, g.queue)

	if !g.game.Running() {
		g.logger.Info("quit requested", "frames", g.game.Frames())
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame onto the window surface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target = screen
	g.game.Draw(g.renderer)
}

// Layout keeps the logical playfield size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return flappy.ScreenWidth, flappy.ScreenHeight
}

// TicksPerSecond converts a fixed frame delay to an ebiten tick rate.
func TicksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.DefaultTPS
	}
	return int(math.Round(float64(time.Second) / float64(delay)))
}

// Run opens the window and plays until it is closed or a quit key is pressed.
func Run(game *flappy.Game, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(flappy.ScreenWidth*scale), int(flappy.ScreenHeight*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(TicksPerSecond(opts.FrameDelay))

	// Returning ebiten.Termination from Update makes RunGame return nil
	return ebiten.RunGame(NewGame(game, opts))
}
