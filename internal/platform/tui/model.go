package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Options configures the terminal frontend.
type Options struct {
	Width      int // Terminal width in cells
	Height     int // Terminal height in cells
	FrameDelay time.Duration
	Fill       rune
	ShowHelp   bool
	Keys       KeyMap
	Logger     *log.Logger
}

// Model is the Bubble Tea model running one game.
// Key messages are queued as they arrive and drained by the next tick.
type Model struct {
	game     *flappy.Game
	queue    *core.EventQueue
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	showHelp bool
	delay    time.Duration
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = core.DefaultFrameDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		queue:    core.NewEventQueue(),
		keys:     opts.Keys,
		help:     help.New(),
		showHelp: opts.ShowHelp,
		delay:    opts.FrameDelay,
		logger:   opts.Logger,
	}
	m.renderer = NewScreenRenderer(opts.Width, m.playfieldHeight(opts.Height), opts.Fill)
	return m
}

// playfieldHeight leaves a row for the help line when it is shown.
func (m Model) playfieldHeight(termHeight int) int {
	if m.showHelp {
		return core.Max(termHeight-1, 0)
	}
	return termHeight
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.queue.Push(m.keys.MapKey(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, m.playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame, then schedules the next one after the fixed delay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !flappy.Frame(m.game, m.queue, m.renderer) {
		m.quitting = true
		m.logger.Info("quit requested", "frames", m.game.Frames())
		return m, tea.Quit
	}
	return m, tickCmd(m.delay)
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := RenderScreen(m.renderer.Frame())
	if m.showHelp {
		view += "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return view
}

// Run plays the game in the terminal until it is quit.
func Run(game *flappy.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
