package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/core"
)

// KeyMap holds the terminal key bindings.
// Quit keys become quit events; every other key is forwarded by name and
// the game decides whether it is a jump.
type KeyMap struct {
	Jump key.Binding
	Quit key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(jump, quit []string) KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(teaKeys(jump)...),
			key.WithHelp(helpKey(jump), "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys(teaKeys(quit)...),
			key.WithHelp(helpKey(quit), "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Jump, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// MapKey translates a key message to a game event.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	if key.Matches(msg, km.Quit) {
		return core.QuitEvent()
	}
	return core.KeyDown(KeyName(msg))
}

// KeyName returns the canonical name of a pressed key.
func KeyName(msg tea.KeyMsg) string {
	return core.NormalizeKey(msg.String())
}

// teaKeys converts configuration key names to Bubble Tea key strings.
func teaKeys(names []string) []string {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		n = core.NormalizeKey(n)
		if n == "space" {
			n = " "
		}
		keys = append(keys, n)
	}
	return keys
}

func helpKey(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return core.NormalizeKey(names[0])
}
