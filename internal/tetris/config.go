package tetris

import "time"

// Config bundles the scoring, leveling, and gravity tuning for a game.
// The zero value is not useful; start from DefaultConfig and override.
type Config struct {
	// LineScores holds the base score per simultaneous line clear, indexed
	// by the number of lines (1..4). Index 0 is unused.
	LineScores [5]int

	// SoftDropUnit is the score per cell descended under player control.
	SoftDropUnit int

	// HardDropUnit is the score per cell travelled by a hard drop,
	// conventionally twice the soft-drop unit.
	HardDropUnit int

	// LinesPerLevel is how many cleared lines advance the level by one.
	LinesPerLevel int

	// BaseDropSpeed is the gravity interval at level 1.
	BaseDropSpeed time.Duration

	// MinDropSpeed is the fastest gravity interval the speed curve may
	// reach at high levels.
	MinDropSpeed time.Duration
}

// DefaultConfig returns the standard guideline tuning.
func DefaultConfig() Config {
	return Config{
		LineScores:    [5]int{0, 100, 300, 500, 800},
		SoftDropUnit:  1,
		HardDropUnit:  2,
		LinesPerLevel: 10,
		BaseDropSpeed: 800 * time.Millisecond,
		MinDropSpeed:  50 * time.Millisecond,
	}
}
