// Package tui runs the game in the terminal through Bubble Tea.
// It handles the terminal program loop, input mapping and cell rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after the fixed frame delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
