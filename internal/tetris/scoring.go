package tetris

import (
	"math"
	"time"
)

// Gravity speeds up by this factor per level.
const dropSpeedFactor = 0.8

// LineScore returns the score for clearing the given number of lines at
// once at the given level. Counts outside 1..4 score nothing.
func (c Config) LineScore(lines, level int) int {
	if lines < 1 || lines > 4 {
		return 0
	}
	return c.LineScores[lines] * level
}

// Level returns the level reached after clearing totalLines in total.
// Levels start at 1 and advance every LinesPerLevel cleared lines.
func (c Config) Level(totalLines int) int {
	if c.LinesPerLevel <= 0 {
		return 1
	}
	return totalLines/c.LinesPerLevel + 1
}

// DropSpeed returns the gravity interval at the given level: the base
// interval shrunk by the speed factor per level, floored to whole
// milliseconds and clamped to the configured minimum. Non-increasing in
// level.
func (c Config) DropSpeed(level int) time.Duration {
	ms := float64(c.BaseDropSpeed.Milliseconds()) * math.Pow(dropSpeedFactor, float64(level-1))
	d := time.Duration(math.Floor(ms)) * time.Millisecond
	if d < c.MinDropSpeed {
		return c.MinDropSpeed
	}
	return d
}

// SoftDropScore returns the bonus for descending the given number of cells
// under player control.
func (c Config) SoftDropScore(cells int) int {
	return cells * c.SoftDropUnit
}

// HardDropScore returns the bonus for hard-dropping across the given number
// of cells.
func (c Config) HardDropScore(cells int) int {
	return cells * c.HardDropUnit
}

// ClearOutcome is the combined result of resolving line clears: the new
// board plus every derived scoring figure. When nothing cleared, Board is
// the input pointer and the scoring fields carry the inputs through.
type ClearOutcome struct {
	Board         *Board
	ClearedRows   []int
	LinesCleared  int
	ScoreGained   int
	NewScore      int
	NewLevel      int
	NewTotalLines int
	LeveledUp     bool
}

// ProcessLineClearing clears complete rows and folds the resulting score,
// level, and line-count updates into one atomic outcome. The score gained
// is computed at the pre-clear level.
func (c Config) ProcessLineClearing(b *Board, level, score, totalLines int) ClearOutcome {
	nb, rows := b.ClearLines()
	n := len(rows)
	if n == 0 {
		return ClearOutcome{
			Board:         b,
			NewScore:      score,
			NewLevel:      level,
			NewTotalLines: totalLines,
		}
	}
	gained := c.LineScore(n, level)
	newTotal := totalLines + n
	newLevel := c.Level(newTotal)
	return ClearOutcome{
		Board:         nb,
		ClearedRows:   rows,
		LinesCleared:  n,
		ScoreGained:   gained,
		NewScore:      score + gained,
		NewLevel:      newLevel,
		NewTotalLines: newTotal,
		LeveledUp:     newLevel > level,
	}
}

// LineClearName returns the traditional name for clearing n lines at once.
func LineClearName(n int) string {
	switch n {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	case 4:
		return "Tetris"
	default:
		return ""
	}
}
