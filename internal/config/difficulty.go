package config

// DifficultyPreset represents a named pacing level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is known.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset adjusts gravity pacing and the lock delay for a difficulty
// preset. Scoring is never changed, so results stay comparable across
// presets.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseDropMs = 1000
		cfg.Gravity.MinDropMs = 100
		cfg.Session.LockDelayMs = 700
	case DifficultyHard:
		cfg.Gravity.BaseDropMs = 500
		cfg.Gravity.MinDropMs = 40
		cfg.Session.LockDelayMs = 300
	}
}
