package session

import (
	"time"

	"github.com/vovakirdan/tetris-engine/internal/tetris"
)

// Event represents something noteworthy that happened while driving a game.
type Event interface {
	event()
}

// PieceSpawnedEvent is emitted when a new piece enters play.
type PieceSpawnedEvent struct {
	Type tetris.PieceType
	Next tetris.PieceType
}

func (PieceSpawnedEvent) event() {}

// PieceLockedEvent is emitted when a piece is stamped onto the board.
type PieceLockedEvent struct {
	Type  tetris.PieceType
	Total int // pieces locked so far this game
}

func (PieceLockedEvent) event() {}

// PieceHeldEvent is emitted when a piece is stashed in the hold slot.
type PieceHeldEvent struct {
	Type tetris.PieceType
}

func (PieceHeldEvent) event() {}

// LinesClearedEvent is emitted when completed rows are cleared. Rows is
// empty for scoring-only clears that never touched the board.
type LinesClearedEvent struct {
	Rows   []int
	Count  int
	Scored int // points gained by the transition, drop bonuses included
}

func (LinesClearedEvent) event() {}

// LevelUpEvent is emitted when the cleared-line total crosses a level
// boundary.
type LevelUpEvent struct {
	Level   int
	Gravity time.Duration // gravity interval at the new level
}

func (LevelUpEvent) event() {}

// GameOverEvent is emitted once, when the game ends.
type GameOverEvent struct {
	Score  int
	Level  int
	Lines  int
	Pieces int
}

func (GameOverEvent) event() {}
