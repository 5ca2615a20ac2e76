package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

func TestScriptEvents(t *testing.T) {
	s := &Script{JumpKey: "space", JumpEvery: 2, Frames: 4}

	drain := func() []core.Event {
		var evs []core.Event
		for ev, ok := s.Poll(); ok; ev, ok = s.Poll() {
			evs = append(evs, ev)
		}
		return evs
	}

	expected := [][]core.Event{
		nil,
		{core.KeyDown("space")},
		nil,
		{core.KeyDown("space"), core.QuitEvent()},
	}
	for frame, want := range expected {
		got := drain()
		if len(got) != len(want) {
			t.Fatalf("frame %d: got %v, expected %v", frame+1, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("frame %d event %d = %+v, expected %+v", frame+1, i, got[i], want[i])
			}
		}
	}
}

func TestRecorderWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	rec := NewRecorder(logger)
	g := flappy.New(flappy.Options{Seed: 3})
	script := &Script{JumpKey: "space", JumpEvery: 10, Frames: 30}

	if err := flappy.Run(context.Background(), g, script, rec, 0); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if rec.Frames() != 30 {
		t.Errorf("Frames() = %d, expected 30", rec.Frames())
	}
	// color, clear, color, bird, color, top, bottom, present
	if rec.Commands() != 30*8 {
		t.Errorf("Commands() = %d, expected %d", rec.Commands(), 30*8)
	}

	out := buf.String()
	if strings.Count(out, "clear") != 30 {
		t.Errorf("expected 30 clear lines, got %d", strings.Count(out, "clear"))
	}
	if !strings.Contains(out, "color=yellow") {
		t.Errorf("log missing bird color: %q", out)
	}
}
