// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetris-engine/internal/tetris"
)

// GameConfig contains all tuning for a game: scoring, gravity pacing, and
// session behavior.
type GameConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Gravity GravityConfig `yaml:"gravity"`
	Session SessionConfig `yaml:"session"`
}

// ScoringConfig defines line-clear and drop scoring.
type ScoringConfig struct {
	LineScores   LineScores `yaml:"line_scores"`
	SoftDropUnit int        `yaml:"soft_drop_unit"`
	HardDropUnit int        `yaml:"hard_drop_unit"`
}

// LineScores are the base awards per simultaneous clear count, multiplied
// by the level at clear time.
type LineScores struct {
	Single int `yaml:"single"`
	Double int `yaml:"double"`
	Triple int `yaml:"triple"`
	Tetris int `yaml:"tetris"`
}

// GravityConfig defines the gravity speed curve.
type GravityConfig struct {
	BaseDropMs    int `yaml:"base_drop_ms"`    // gravity interval at level 1
	MinDropMs     int `yaml:"min_drop_ms"`     // interval floor at high levels
	LinesPerLevel int `yaml:"lines_per_level"` // cleared lines per level step
}

// SessionConfig defines driver behavior outside the core rules.
type SessionConfig struct {
	LockDelayMs int    `yaml:"lock_delay_ms"` // grace period before a resting piece locks
	Source      string `yaml:"source"`        // piece randomizer name, e.g. "bag"
}

// Rules converts the scoring and gravity sections into engine tuning.
func (c GameConfig) Rules() tetris.Config {
	return tetris.Config{
		LineScores: [5]int{
			0,
			c.Scoring.LineScores.Single,
			c.Scoring.LineScores.Double,
			c.Scoring.LineScores.Triple,
			c.Scoring.LineScores.Tetris,
		},
		SoftDropUnit:  c.Scoring.SoftDropUnit,
		HardDropUnit:  c.Scoring.HardDropUnit,
		LinesPerLevel: c.Gravity.LinesPerLevel,
		BaseDropSpeed: time.Duration(c.Gravity.BaseDropMs) * time.Millisecond,
		MinDropSpeed:  time.Duration(c.Gravity.MinDropMs) * time.Millisecond,
	}
}

// LockDelay returns the session lock delay as a duration.
func (c GameConfig) LockDelay() time.Duration {
	return time.Duration(c.Session.LockDelayMs) * time.Millisecond
}

// Validate checks the configuration for values the engine cannot work with.
func (c GameConfig) Validate() error {
	ls := c.Scoring.LineScores
	if ls.Single < 0 || ls.Double < 0 || ls.Triple < 0 || ls.Tetris < 0 {
		return fmt.Errorf("config: line scores must not be negative, got %+v", ls)
	}
	if c.Scoring.SoftDropUnit < 0 || c.Scoring.HardDropUnit < 0 {
		return fmt.Errorf("config: drop units must not be negative, got soft=%d hard=%d",
			c.Scoring.SoftDropUnit, c.Scoring.HardDropUnit)
	}
	if c.Gravity.BaseDropMs <= 0 {
		return fmt.Errorf("config: base_drop_ms must be positive, got %d", c.Gravity.BaseDropMs)
	}
	if c.Gravity.MinDropMs <= 0 {
		return fmt.Errorf("config: min_drop_ms must be positive, got %d", c.Gravity.MinDropMs)
	}
	if c.Gravity.MinDropMs > c.Gravity.BaseDropMs {
		return fmt.Errorf("config: min_drop_ms %d exceeds base_drop_ms %d",
			c.Gravity.MinDropMs, c.Gravity.BaseDropMs)
	}
	if c.Gravity.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d", c.Gravity.LinesPerLevel)
	}
	if c.Session.LockDelayMs < 0 {
		return fmt.Errorf("config: lock_delay_ms must not be negative, got %d", c.Session.LockDelayMs)
	}
	if c.Session.Source == "" {
		return fmt.Errorf("config: session source must not be empty")
	}
	return nil
}
