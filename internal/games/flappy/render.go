package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Renderer receives immediate-mode draw commands in playfield coordinates.
// Implementations scale them onto their own surface.
type Renderer interface {
	SetDrawColor(c core.Color)
	Clear()
	FillRect(r core.Rect)
	Present()
}

// Palette holds the flat colors used for each element.
type Palette struct {
	Background core.Color
	Bird       core.Color
	Pipe       core.Color
}

// DefaultPalette returns a black background, a yellow bird and green pipes.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBlack,
		Bird:       core.ColorYellow,
		Pipe:       core.ColorGreen,
	}
}

// Draw clears the surface and issues the draw commands for one frame,
// then presents it.
func (g *Game) Draw(r Renderer) {
	r.SetDrawColor(g.palette.Background)
	r.Clear()

	g.drawBird(r)
	g.drawPipes(r)
	g.drawScore(r)

	r.Present()
}

func (g *Game) drawBird(r Renderer) {
	r.SetDrawColor(g.palette.Bird)
	r.FillRect(g.bird.Rect())
}

// drawPipes draws the pipe at the cursor only.
func (g *Game) drawPipes(r Renderer) {
	r.SetDrawColor(g.palette.Pipe)

	p := g.pipes.Current()
	r.FillRect(p.TopRect())
	r.FillRect(p.BottomRect())
}

// drawScore draws nothing: the score is never tracked.
func (g *Game) drawScore(Renderer) {}
