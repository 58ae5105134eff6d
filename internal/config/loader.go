package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Source names where a loaded config came from.
const (
	SourceEmbedded = "embedded"
)

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load reads the settings and validates them.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need the keys they change; the rest keep their defaults.
// The second return value is the path that was used, or SourceEmbedded.
func Load(customPath string) (Config, string, error) {
	return load(customPath, userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml"))
}

func load(customPath, userPath, localPath string) (Config, string, error) {
	// Try custom path first; an explicit path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Implicit locations are skipped when missing or broken.
	for _, path := range []string{userPath, localPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return finish(cfg, path)
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return finish(Default(), SourceEmbedded)
	}
	return finish(cfg, SourceEmbedded)
}

// parse decodes data on top of the built-in defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func finish(cfg Config, source string) (Config, string, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
