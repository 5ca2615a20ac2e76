package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy/internal/core"
)

func newTestGame() *Game {
	return New(Options{Seed: 1})
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame()

	b := g.Bird()
	if b.X != 200 || b.Y != 300 || b.Velocity != 0 {
		t.Errorf("initial bird = %+v, expected {X:200 Y:300 Velocity:0}", b)
	}

	p := g.Pipes()
	if p.Active() != 0 {
		t.Errorf("initial active pipe = %d, expected 0", p.Active())
	}
	if got := p.At(0); got != (Pipe{X: 800, Y: 0}) {
		t.Errorf("pipe 0 = %+v, expected {X:800 Y:0}", got)
	}
	if got := p.At(1); got != (Pipe{X: 1200, Y: 0}) {
		t.Errorf("pipe 1 = %+v, expected {X:1200 Y:0}", got)
	}

	if !g.Running() {
		t.Error("new game should be running")
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

func TestBirdGravityReplay(t *testing.T) {
	g := newTestGame()

	g.UpdateBird()
	b := g.Bird()
	if b.Velocity != 0.5 || b.Y != 300.5 {
		t.Fatalf("after 1 update: v=%v y=%v, expected v=0.5 y=300.5", b.Velocity, b.Y)
	}

	g = newTestGame()
	for i := 0; i < 10; i++ {
		g.UpdateBird()
	}
	b = g.Bird()

	// y grows by 0.5 + 1.0 + ... + 5.0 = 27.5
	if b.Velocity != 5.0 {
		t.Errorf("after 10 updates: v=%v, expected 5.0", b.Velocity)
	}
	if b.Y != 327.5 {
		t.Errorf("after 10 updates: y=%v, expected 327.5", b.Y)
	}
	if b.X != 200 {
		t.Errorf("bird x changed to %v", b.X)
	}
}

func TestBirdClampInvariant(t *testing.T) {
	tests := []struct {
		name     string
		y, v     float64
		expected float64
	}{
		{"fast upward", 10, -1e6, 0},
		{"ceiling", 0, -10, 0},
		{"fast downward", 500, 1e6, ScreenHeight - BirdHeight},
		{"floor", ScreenHeight - BirdHeight, 3, ScreenHeight - BirdHeight},
		{"free fall", 100, 2, 102.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bird{X: 200, Y: tc.y, Velocity: tc.v}
			b.Update()

			if b.Y < 0 || b.Y > ScreenHeight-BirdHeight {
				t.Fatalf("y=%v escaped [0, %d]", b.Y, ScreenHeight-BirdHeight)
			}
			if b.Y != tc.expected {
				t.Errorf("y=%v, expected %v", b.Y, tc.expected)
			}
		})
	}
}

func TestBirdClampKeepsVelocity(t *testing.T) {
	b := Bird{X: 200, Y: 2, Velocity: -10}
	b.Update()

	if b.Y != 0 {
		t.Fatalf("y=%v, expected clamp to 0", b.Y)
	}
	if b.Velocity != -9.5 {
		t.Errorf("velocity=%v, clamping should not reset it (expected -9.5)", b.Velocity)
	}
}

func TestJumpOverwritesVelocity(t *testing.T) {
	for _, v := range []float64{-25, -10, 0, 3.5, 40} {
		g := newTestGame()
		g.bird.Velocity = v

		g.HandleEvent(core.KeyDown("space"))

		if g.bird.Velocity != JumpVelocity {
			t.Errorf("velocity %v after jump = %v, expected %v", v, g.bird.Velocity, float64(JumpVelocity))
		}
	}
}

func TestHandleEventIgnoresOtherInput(t *testing.T) {
	g := newTestGame()
	g.bird.Velocity = 3

	g.HandleEvent(core.KeyDown("x"))
	g.HandleEvent(core.KeyDown("up"))
	g.HandleEvent(core.Event{Kind: core.EventNone})

	if g.bird.Velocity != 3 {
		t.Errorf("velocity changed to %v on non-jump input", g.bird.Velocity)
	}
	if !g.Running() {
		t.Error("non-quit input stopped the game")
	}
}

func TestCustomJumpKeys(t *testing.T) {
	g := New(Options{JumpKeys: []string{"W", "up"}})

	g.HandleEvent(core.KeyDown("space"))
	if g.bird.Velocity != 0 {
		t.Fatalf("space should not jump when not bound, velocity=%v", g.bird.Velocity)
	}

	g.HandleEvent(core.KeyDown("w"))
	if g.bird.Velocity != JumpVelocity {
		t.Errorf("w should jump, velocity=%v", g.bird.Velocity)
	}
}

func TestHandleEventQuit(t *testing.T) {
	g := newTestGame()
	g.HandleEvent(core.QuitEvent())

	if g.Running() {
		t.Error("quit event should stop the game")
	}
}

func TestPipeRecycle(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"already past threshold", -90},
		{"crosses threshold", -76},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.pipes.Set(0, Pipe{X: tc.x, Y: 123})

			if !g.UpdatePipes() {
				t.Fatal("UpdatePipes() should report a recycle")
			}

			p := g.pipes.At(0)
			if p.X != ScreenWidth {
				t.Errorf("recycled x=%v, expected %d", p.X, ScreenWidth)
			}
			if p.Y < 0 || p.Y >= ScreenHeight-PipeGap {
				t.Errorf("recycled y=%v outside [0, %d)", p.Y, ScreenHeight-PipeGap)
			}
		})
	}
}

func TestPipeRecycleGapRange(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		g := New(Options{Seed: seed})
		g.pipes.Set(0, Pipe{X: -100})
		g.UpdatePipes()

		y := g.pipes.At(0).Y
		if y < 0 || y >= ScreenHeight-PipeGap || y != float64(int(y)) {
			t.Fatalf("seed %d: gap y=%v not an integer in [0, %d)", seed, y, ScreenHeight-PipeGap)
		}
	}
}

func TestPipeAlternation(t *testing.T) {
	g := newTestGame()

	for n := 1; n <= 20; n++ {
		before := [PipeCount]Pipe{g.pipes.At(0), g.pipes.At(1)}
		active := g.pipes.Active()

		g.UpdatePipes()

		if g.pipes.Active() != n%2 {
			t.Fatalf("after %d updates active=%d, expected %d", n, g.pipes.Active(), n%2)
		}
		for i := 0; i < PipeCount; i++ {
			moved := g.pipes.At(i).X != before[i].X
			if moved != (i == active) {
				t.Errorf("update %d: pipe %d moved=%v, active was %d", n, i, moved, active)
			}
		}
	}
}

func TestPipeScrollToRecycle(t *testing.T) {
	g := newTestGame()
	g.pipes.Set(0, Pipe{X: 5, Y: 50})

	// Pipe 0 is serviced on odd-numbered calls: 1st, 3rd, 5th, ...
	update := func() {
		g.UpdatePipes()
		g.UpdatePipes()
	}

	update()
	if x := g.pipes.At(0).X; x != 0 {
		t.Fatalf("after 1 own update x=%v, expected 0", x)
	}
	update()
	if x := g.pipes.At(0).X; x != -5 {
		t.Fatalf("after 2 own updates x=%v, expected -5", x)
	}

	// 15 more own updates reach exactly -PipeWidth, which is not yet off-screen
	for i := 0; i < 15; i++ {
		update()
	}
	if p := g.pipes.At(0); p.X != -PipeWidth || p.Y != 50 {
		t.Fatalf("after 17 own updates pipe=%+v, expected x=%d unrecycled", p, -PipeWidth)
	}

	update()
	if x := g.pipes.At(0).X; x != ScreenWidth {
		t.Errorf("18th own update should recycle, x=%v", x)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give the same pipes
	run := func() [PipeCount]Pipe {
		g := New(Options{Seed: 12345})
		q := core.NewEventQueue()
		for i := 0; i < 2000; i++ {
			if i%15 == 0 {
				q.Push(core.KeyDown("space"))
			}
			Step(g, q)
		}
		return [PipeCount]Pipe{g.pipes.At(0), g.pipes.At(1)}
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("Determinism failed: %+v != %+v", first, second)
	}
}
