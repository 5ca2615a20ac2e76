package flappy

import (
	"context"
	"time"

	"github.com/vovakirdan/flappy/internal/core"
)

// EventSource yields pending input events until it is drained.
type EventSource interface {
	Poll() (ev core.Event, ok bool)
}

// Step drains every pending event, then updates the bird and the active pipe.
func Step(g *Game, src EventSource) {
	for ev, ok := src.Poll(); ok; ev, ok = src.Poll() {
		g.HandleEvent(ev)
	}

	g.UpdateBird()
	g.UpdatePipes()
	g.frames++
}

// Frame runs one full iteration of the game loop: drain input, update, draw
// and present. A quit seen while draining still lets the current frame finish.
// Once the game has stopped Frame does nothing and returns false.
func Frame(g *Game, src EventSource, r Renderer) bool {
	if !g.running {
		return false
	}

	Step(g, src)
	g.Draw(r)

	return g.running
}

// Run drives Frame with a fixed delay after every frame until the game stops.
// Frame pacing is purely delay based; slow frames slow the simulation down.
// Cancelling ctx ends the loop at the next delay, never in the middle of a frame.
func Run(ctx context.Context, g *Game, src EventSource, r Renderer, delay time.Duration) error {
	for Frame(g, src, r) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}
