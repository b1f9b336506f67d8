package tetris

import "time"

// Status is the lifecycle state of a game.
type Status string

// Game lifecycle states.
const (
	StatusReady    Status = "ready"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// LastAction tags the most recent player-visible action, for presentation
// layers that animate differently per action kind.
type LastAction string

// LastAction tags.
const (
	LastMove     LastAction = "move"
	LastRotate   LastAction = "rotate"
	LastDrop     LastAction = "drop"
	LastHardDrop LastAction = "hard_drop"
	LastNone     LastAction = "none"
)

// Animation is presentation bookkeeping carried in the state so consumers
// can drive line-clear effects without reaching into reducer internals.
type Animation struct {
	LastAction    LastAction
	ClearingLines []int
	Animating     bool
}

// GameState is one immutable snapshot of a game. The reducer never mutates
// a state; it returns a new one, sharing the pointers of any substructure
// it did not touch. Consumers may therefore detect change with a pointer
// comparison on the state itself, its board, or its pieces.
type GameState struct {
	Board   *Board
	Current *Piece // nil between lock and the next spawn
	Next    *Piece // never nil once a game exists
	Held    *Piece // nil until the first hold
	CanHold bool

	Score int
	Level int
	Lines int

	Status Status

	// DropTimer accumulates wall-clock time since the last gravity step;
	// the driving loop compares it against Config.DropSpeed. LastDrop is
	// the timestamp of the most recent Tick.
	DropTimer time.Duration
	LastDrop  time.Time

	Anim Animation
}
