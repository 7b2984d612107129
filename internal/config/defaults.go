package config

import (
	_ "embed"
)

//go:embed defaults/solitaire.yaml
var defaultSolitaireYAML []byte

// DefaultSolitaireConfig returns the default Klondike configuration.
func DefaultSolitaireConfig() SolitaireConfig {
	return SolitaireConfig{
		DrawCount: 1,
		Scoring: ScoringConfig{
			Foundation:     10,
			WasteToTableau: 5,
			Reveal:         5,
		},
	}
}
