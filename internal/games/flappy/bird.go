package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Bird is the player-controlled sprite. X never changes after creation.
type Bird struct {
	X        float64
	Y        float64 // Top edge
	Velocity float64 // Vertical velocity, negative is up
}

// NewBird places the bird at a quarter of the screen width, vertically
// centered and at rest.
func NewBird() Bird {
	return Bird{
		X:        ScreenWidth / 4,
		Y:        ScreenHeight / 2,
		Velocity: 0,
	}
}

// Jump replaces the current velocity with the jump impulse.
func (b *Bird) Jump() {
	b.Velocity = JumpVelocity
}

// Update applies one frame of gravity and keeps the bird on screen.
// Clamping repositions the bird but leaves its velocity untouched.
func (b *Bird) Update() {
	b.Velocity += Gravity
	b.Y += b.Velocity
	b.Y = core.ClampF(b.Y, 0, ScreenHeight-BirdHeight)
}

// Rect returns the bird's drawing rectangle.
func (b Bird) Rect() core.Rect {
	return core.RectFromFloat(b.X, b.Y, BirdWidth, BirdHeight)
}
