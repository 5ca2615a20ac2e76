package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// ImageRenderer draws flat rectangles onto an ebiten image.
type ImageRenderer struct {
	Target *ebiten.Image
	color  core.Color
}

var _ flappy.Renderer = (*ImageRenderer)(nil)

// SetDrawColor sets the color for subsequent Clear and FillRect calls.
func (r *ImageRenderer) SetDrawColor(c core.Color) {
	r.color = c
}

// Clear fills the whole target with the draw color.
func (r *ImageRenderer) Clear() {
	r.Target.Fill(r.color.RGBA())
}

// FillRect fills a playfield rectangle.
func (r *ImageRenderer) FillRect(rc core.Rect) {
	if rc.Empty() {
		return
	}
	vector.DrawFilledRect(r.Target, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), r.color.RGBA(), false)
}

// Present is a no-op: ebiten shows the image once Draw returns.
func (r *ImageRenderer) Present() {}
