package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// DefaultGameConfig returns the default configuration: classic scoring with
// an 800ms gravity baseline and the 7-bag randomizer.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Scoring: ScoringConfig{
			LineScores: LineScores{
				Single: 100,
				Double: 300,
				Triple: 500,
				Tetris: 800,
			},
			SoftDropUnit: 1,
			HardDropUnit: 2,
		},
		Gravity: GravityConfig{
			BaseDropMs:    800,
			MinDropMs:     50,
			LinesPerLevel: 10,
		},
		Session: SessionConfig{
			LockDelayMs: 500,
			Source:      "bag",
		},
	}
}

