package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a flat fill color.
// Values map onto ANSI 256-color codes in the terminal and RGBA in a window.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// rgba holds the window rendition of each color.
// Pure primaries match the classic SDL palette (0/255 channels).
var rgba = map[Color]color.RGBA{
	ColorDefault:       {0, 0, 0, 255},
	ColorBlack:         {0, 0, 0, 255},
	ColorRed:           {205, 0, 0, 255},
	ColorGreen:         {0, 255, 0, 255},
	ColorYellow:        {255, 255, 0, 255},
	ColorBlue:          {0, 0, 238, 255},
	ColorMagenta:       {205, 0, 205, 255},
	ColorCyan:          {0, 205, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {255, 0, 0, 255},
	ColorBrightGreen:   {0, 255, 0, 255},
	ColorBrightYellow:  {255, 255, 0, 255},
	ColorBrightBlue:    {92, 92, 255, 255},
	ColorBrightMagenta: {255, 0, 255, 255},
	ColorBrightCyan:    {0, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGBA returns the color as used by window renderers.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorDefault]
}

// ParseColor looks up a color by its configuration name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
