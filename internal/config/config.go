// Package config provides YAML-based game configuration loading for the
// solitaire platform.
package config

import (
	"errors"
	"fmt"
)

// SolitaireConfig contains all configuration for Klondike.
type SolitaireConfig struct {
	DrawCount int           `yaml:"draw_count"`
	Scoring   ScoringConfig `yaml:"scoring"`
}

// ScoringConfig defines the points awarded per action.
type ScoringConfig struct {
	Foundation     int `yaml:"foundation"`
	WasteToTableau int `yaml:"waste_to_tableau"`
	Reveal         int `yaml:"reveal"`
}

// DrawMode is the number of cards turned per draw.
type DrawMode int

const (
	DrawOne   DrawMode = 1
	DrawThree DrawMode = 3
)

// ErrInvalidDrawMode is returned for draw counts other than 1 or 3.
var ErrInvalidDrawMode = errors.New("config: draw_count must be 1 or 3")

// ParseDrawMode validates a draw count given on the command line or in YAML.
func ParseDrawMode(n int) (DrawMode, error) {
	switch DrawMode(n) {
	case DrawOne, DrawThree:
		return DrawMode(n), nil
	}
	return 0, fmt.Errorf("%w (got %d)", ErrInvalidDrawMode, n)
}

// Validate checks that the configuration can drive a game.
func (c SolitaireConfig) Validate() error {
	if _, err := ParseDrawMode(c.DrawCount); err != nil {
		return err
	}
	if c.Scoring.Foundation < 0 || c.Scoring.WasteToTableau < 0 || c.Scoring.Reveal < 0 {
		return fmt.Errorf("config: scoring values must not be negative: %+v", c.Scoring)
	}
	return nil
}

// ApplyDrawMode overrides the configured draw count.
func ApplyDrawMode(cfg *SolitaireConfig, mode DrawMode) {
	cfg.DrawCount = int(mode)
}
