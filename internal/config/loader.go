package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Embedded is reported as the source when no file was found.
const Embedded = "embedded"

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
// Values missing from a file keep their defaults. The result is validated.
func Load(customPath string) (Config, string, error) {
	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Fall through unreadable or broken implicit files
	for _, path := range []string{userConfigPath(), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return validated(cfg, path)
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	return validated(cfg, Embedded)
}

// parse decodes YAML over the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validated(cfg Config, source string) (Config, string, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "config.yaml")
}
