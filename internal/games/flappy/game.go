// Package flappy implements a minimal Flappy Bird simulation.
// A bird falls under gravity and jumps on a key press while two pipes scroll
// from right to left. There is no collision detection and no scoring.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy/internal/core"
)

// Playfield dimensions, in logical pixels.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Sprite sizes.
const (
	BirdWidth  = 40
	BirdHeight = 40
	PipeWidth  = 80
	PipeGap    = 200 // Vertical opening between the two halves of a pipe
)

// Physics constants, applied once per frame.
const (
	Gravity      = 0.5 // Added to the bird's velocity every frame
	JumpVelocity = -10 // Velocity assigned on jump (negative = up)
	ScrollSpeed  = 5   // Pipe movement to the left per update
)

// DefaultJumpKey is used when no jump binding is given.
const DefaultJumpKey = "space"

// Options configures a new Game.
type Options struct {
	Seed     int64    // RNG seed for pipe gap placement
	JumpKeys []string // Key names that make the bird jump
	Palette  Palette
}

// Game owns the whole simulation state for one session.
type Game struct {
	bird     Bird
	pipes    Pipes
	score    int // Never incremented; see drawScore
	running  bool
	frames   int
	jumpKeys map[string]bool
	palette  Palette
	rng      *rand.Rand
}

// New creates a game in its initial state: bird at rest mid-screen, pipes
// staggered past the right edge, running.
func New(opts Options) *Game {
	keys := opts.JumpKeys
	if len(keys) == 0 {
		keys = []string{DefaultJumpKey}
	}
	jumpKeys := make(map[string]bool, len(keys))
	for _, k := range keys {
		jumpKeys[core.NormalizeKey(k)] = true
	}

	palette := opts.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}

	return &Game{
		bird:     NewBird(),
		pipes:    NewPipes(),
		running:  true,
		jumpKeys: jumpKeys,
		palette:  palette,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}
}

// HandleEvent applies a single input event.
// A quit request stops the game; a jump key sets the bird's velocity to the
// jump impulse, discarding whatever velocity it had. Everything else is ignored.
func (g *Game) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventQuit:
		g.running = false
	case core.EventKeyDown:
		if g.jumpKeys[core.NormalizeKey(ev.Key)] {
			g.bird.Jump()
		}
	}
}

// UpdateBird advances the bird by one frame.
func (g *Game) UpdateBird() {
	g.bird.Update()
}

// UpdatePipes advances the active pipe by one frame and moves the cursor on.
// It reports whether that pipe was recycled.
func (g *Game) UpdatePipes() bool {
	return g.pipes.Update(g.rng)
}

// Running reports whether the game still accepts frames.
func (g *Game) Running() bool {
	return g.running
}

// Bird returns a copy of the bird state.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns the pipe slots and cursor.
func (g *Game) Pipes() *Pipes {
	return &g.pipes
}

// Score returns the current score. It is always zero.
func (g *Game) Score() int {
	return g.score
}

// Frames returns the number of frames processed so far.
func (g *Game) Frames() int {
	return g.frames
}
