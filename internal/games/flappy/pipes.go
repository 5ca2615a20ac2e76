package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy/internal/core"
)

// Pipe is one obstacle: a column with a gap whose top edge is at Y.
type Pipe struct {
	X float64 // Left edge
	Y float64 // Top edge of the gap
}

// TopRect returns the rectangle of the upper half, from the top of the
// screen down to the gap.
func (p Pipe) TopRect() core.Rect {
	return core.RectFromFloat(p.X, 0, PipeWidth, p.Y)
}

// BottomRect returns the rectangle of the lower half, from below the gap
// down to the bottom of the screen.
func (p Pipe) BottomRect() core.Rect {
	bottomY := p.Y + PipeGap
	return core.RectFromFloat(p.X, bottomY, PipeWidth, ScreenHeight-bottomY)
}

// PipeCount is the number of pipe slots. Pipes are recycled, never created.
const PipeCount = 2

// Pipes holds the fixed pipe slots and the cursor selecting which one is
// serviced by the next update and drawn by the next draw.
type Pipes struct {
	slots  [PipeCount]Pipe
	active int
}

// NewPipes staggers the two pipes beyond the right edge of the screen.
func NewPipes() Pipes {
	return Pipes{
		slots: [PipeCount]Pipe{
			{X: ScreenWidth, Y: 0},
			{X: ScreenWidth + ScreenWidth/2, Y: 0},
		},
	}
}

// Active returns the index of the pipe serviced next.
func (p *Pipes) Active() int {
	return p.active
}

// Current returns the pipe at the cursor.
func (p *Pipes) Current() Pipe {
	return p.slots[p.active]
}

// At returns the pipe in slot i.
func (p *Pipes) At(i int) Pipe {
	return p.slots[i]
}

// Set overwrites slot i.
func (p *Pipes) Set(i int, pipe Pipe) {
	p.slots[i] = pipe
}

// Update scrolls only the active pipe, recycles it to the right edge once it
// is fully off the left side, then advances the cursor. Each pipe therefore
// moves on every other call. It reports whether the pipe was recycled.
func (p *Pipes) Update(rng *rand.Rand) bool {
	pipe := &p.slots[p.active]
	pipe.X -= ScrollSpeed

	recycled := false
	if pipe.X < -PipeWidth {
		pipe.X = ScreenWidth
		pipe.Y = float64(rng.Intn(ScreenHeight - PipeGap))
		recycled = true
	}

	p.active = (p.active + 1) % PipeCount
	return recycled
}
