package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the config directories.
const configFile = "solitaire.yaml"

// LoadSolitaire loads Klondike configuration.
// Search order: customPath -> ~/.solitaire/configs/solitaire.yaml -> ./configs/solitaire.yaml -> embedded default
// Files found on the search path are only used when they parse and validate.
func LoadSolitaire(customPath string) (SolitaireConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SolitaireConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSolitaire(data)
		if err != nil {
			return SolitaireConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSolitaire(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseSolitaire(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSolitaire(defaultSolitaireYAML)
	if err != nil {
		return DefaultSolitaireConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSolitaire decodes YAML on top of the defaults, so omitted keys keep
// their default values, then validates the result.
func parseSolitaire(data []byte) (SolitaireConfig, error) {
	cfg := DefaultSolitaireConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SolitaireConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SolitaireConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solitaire", "configs", filename)
}
