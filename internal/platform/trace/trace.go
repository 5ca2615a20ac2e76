// Package trace runs the game headless: input comes from a script and every
// draw command is written to a logger.
package trace

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Recorder is a Renderer that logs draw commands at debug level and counts them.
type Recorder struct {
	logger   *log.Logger
	color    core.Color
	frame    int
	commands int
}

var _ flappy.Renderer = (*Recorder)(nil)

// NewRecorder creates a recorder writing to logger.
func NewRecorder(logger *log.Logger) *Recorder {
	return &Recorder{logger: logger}
}

func (r *Recorder) SetDrawColor(c core.Color) {
	r.color = c
	r.commands++
}

func (r *Recorder) Clear() {
	r.commands++
	r.logger.Debug("clear", "frame", r.frame, "color", r.color)
}

func (r *Recorder) FillRect(rc core.Rect) {
	r.commands++
	r.logger.Debug("fill", "frame", r.frame, "color", r.color,
		"x", rc.X, "y", rc.Y, "w", rc.W, "h", rc.H)
}

func (r *Recorder) Present() {
	r.commands++
	r.frame++
}

// Frames returns the number of presented frames.
func (r *Recorder) Frames() int {
	return r.frame
}

// Commands returns the total number of draw commands seen.
func (r *Recorder) Commands() int {
	return r.commands
}

// Script is an EventSource that presses a key every few frames and requests
// quit after a fixed number of frames.
type Script struct {
	JumpKey   string
	JumpEvery int // Frames between jumps; 0 disables jumping
	Frames    int // Frame on which quit is requested

	frame   int
	pending []core.Event
}

// Poll implements flappy.EventSource. Each drain consumes one frame of script.
func (s *Script) Poll() (core.Event, bool) {
	if s.pending == nil {
		s.frame++
		s.pending = make([]core.Event, 0, 2)
		if s.JumpEvery > 0 && s.frame%s.JumpEvery == 0 {
			s.pending = append(s.pending, core.KeyDown(s.JumpKey))
		}
		if s.frame >= s.Frames {
			s.pending = append(s.pending, core.QuitEvent())
		}
	}

	if len(s.pending) == 0 {
		s.pending = nil
		return core.Event{}, false
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, true
}
