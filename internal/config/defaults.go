package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Jump: []string{"space"},
			Quit: []string{"q", "ctrl+c", "esc"},
		},
		Colors: ColorsConfig{
			Background: "black",
			Bird:       "yellow",
			Pipe:       "green",
		},
		Window: WindowConfig{
			Title: "Flappy Bird",
			Scale: 1.0,
		},
		Terminal: TerminalConfig{
			Fill:     "█",
			ShowHelp: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
