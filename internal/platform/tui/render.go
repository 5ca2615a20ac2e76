package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// ScreenRenderer draws playfield rectangles onto a terminal cell grid.
// Commands go to a back buffer; Present publishes it to the front buffer
// that View displays, so a half-drawn frame is never shown.
type ScreenRenderer struct {
	back  *core.Screen
	front *core.Screen
	color core.Color
	fill  rune
}

var _ flappy.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer for a grid of width x height cells.
func NewScreenRenderer(width, height int, fill rune) *ScreenRenderer {
	if fill == 0 {
		fill = '█'
	}
	return &ScreenRenderer{
		back:  core.NewScreen(width, height),
		front: core.NewScreen(width, height),
		fill:  fill,
	}
}

// Resize changes the size of the cell grid. The next Present shows the new size.
func (r *ScreenRenderer) Resize(width, height int) {
	r.back.Resize(width, height)
}

// SetDrawColor sets the color for subsequent Clear and FillRect calls.
func (r *ScreenRenderer) SetDrawColor(c core.Color) {
	r.color = c
}

// Clear fills the whole grid with the draw color.
func (r *ScreenRenderer) Clear() {
	r.back.Fill(r.fill, r.color)
}

// FillRect scales a playfield rectangle onto the grid and fills it.
func (r *ScreenRenderer) FillRect(rc core.Rect) {
	cells := rc.Scale(flappy.ScreenWidth, flappy.ScreenHeight, r.back.Width(), r.back.Height())
	r.back.FillRect(cells, r.fill, r.color)
}

// Present publishes the back buffer.
func (r *ScreenRenderer) Present() {
	r.front.CopyFrom(r.back)
}

// Frame returns the last presented frame.
func (r *ScreenRenderer) Frame() *core.Screen {
	return r.front
}
