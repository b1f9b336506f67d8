// Package session drives a tetris engine against wall-clock time. It owns
// gravity pacing, the lock delay, and automatic spawning, and reports what
// happened as typed events so callers never have to diff game states
// themselves.
//
// A Session is not safe for concurrent use; drive it from one goroutine.
package session

import (
	"time"

	"github.com/vovakirdan/tetris-engine/internal/tetris"
)

// DefaultLockDelay is the grace period a resting piece gets before it locks.
const DefaultLockDelay = 500 * time.Millisecond

// Options tunes the driving loop.
type Options struct {
	// LockDelay is how long a piece may rest on the stack before it locks.
	// Zero locks on the first advance that finds the piece resting.
	LockDelay time.Duration
}

// Session owns one running game.
type Session struct {
	eng  *tetris.Engine
	st   *tetris.GameState
	opts Options

	resting     time.Duration // time the current piece has spent unable to fall
	pieces      int
	startedAt   time.Time
	lastAdvance time.Time
}

// New creates a session around an engine. The game starts in the ready
// state; call Start to begin play.
func New(eng *tetris.Engine, opts Options) *Session {
	return &Session{eng: eng, st: eng.NewGame(), opts: opts}
}

// State returns the current game state snapshot.
func (s *Session) State() *tetris.GameState {
	return s.st
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.st.Status == tetris.StatusGameOver
}

// Pieces returns how many pieces have locked this game.
func (s *Session) Pieces() int {
	return s.pieces
}

// Start spawns the first piece and establishes the gravity clock baseline.
func (s *Session) Start(now time.Time) []Event {
	s.startedAt = now
	s.lastAdvance = now
	evts := s.apply(tetris.Action{Kind: tetris.ActionSpawn})
	s.apply(tetris.Action{Kind: tetris.ActionTick, At: now})
	return evts
}

// Do applies one player action. Successful movement or rotation postpones a
// pending lock.
func (s *Session) Do(kind tetris.ActionKind) []Event {
	if kind == tetris.ActionRestart {
		return s.restart()
	}
	prev := s.st
	evts := s.apply(tetris.Action{Kind: kind})
	switch kind {
	case tetris.ActionMoveLeft, tetris.ActionMoveRight, tetris.ActionMoveDown,
		tetris.ActionRotateCW, tetris.ActionRotateCCW:
		if s.st.Current != prev.Current {
			s.resting = 0
		}
	case tetris.ActionHardDrop, tetris.ActionHold:
		s.resting = 0
	}
	return evts
}

// Advance folds elapsed wall-clock time into the game: it feeds the gravity
// timer, applies a gravity step once the interval has passed, and locks a
// resting piece after the lock delay, spawning its successor.
func (s *Session) Advance(now time.Time) []Event {
	var dt time.Duration
	if !s.lastAdvance.IsZero() {
		dt = now.Sub(s.lastAdvance)
	}
	s.lastAdvance = now

	evts := s.apply(tetris.Action{Kind: tetris.ActionTick, At: now})
	st := s.st
	if st.Status != tetris.StatusPlaying || st.Current == nil {
		return evts
	}

	if tetris.ShouldLock(st.Board, *st.Current) {
		s.resting += dt
		if s.resting >= s.opts.LockDelay {
			s.resting = 0
			evts = append(evts, s.apply(tetris.Action{Kind: tetris.ActionLock})...)
			if s.st.Status == tetris.StatusPlaying {
				evts = append(evts, s.apply(tetris.Action{Kind: tetris.ActionSpawn})...)
			}
		}
		return evts
	}

	s.resting = 0
	if st.DropTimer >= s.eng.Config().DropSpeed(st.Level) {
		evts = append(evts, s.apply(tetris.Action{Kind: tetris.ActionMoveDown})...)
	}
	return evts
}

// Result summarizes the game so far.
type Result struct {
	Score    int
	Level    int
	Lines    int
	Pieces   int
	Duration time.Duration
}

// Result reports the score sheet as of now.
func (s *Session) Result(now time.Time) Result {
	var d time.Duration
	if !s.startedAt.IsZero() {
		d = now.Sub(s.startedAt)
	}
	return Result{
		Score:    s.st.Score,
		Level:    s.st.Level,
		Lines:    s.st.Lines,
		Pieces:   s.pieces,
		Duration: d,
	}
}

func (s *Session) restart() []Event {
	s.st = s.eng.Apply(s.st, tetris.Action{Kind: tetris.ActionRestart})
	s.resting = 0
	s.pieces = 0
	s.startedAt = time.Time{}
	s.lastAdvance = time.Time{}
	return nil
}

// apply runs one action and converts the state change into events.
func (s *Session) apply(a tetris.Action) []Event {
	prev := s.st
	next := s.eng.Apply(prev, a)
	if next == prev {
		return nil
	}
	s.st = next
	return s.diff(prev, next)
}

// diff reads events off the transition from prev to next. Board pointer
// changes mean a piece locked; a current piece appearing alongside one
// means the preview was promoted.
func (s *Session) diff(prev, next *tetris.GameState) []Event {
	var evts []Event

	if next.Board != prev.Board && prev.Current != nil {
		s.pieces++
		evts = append(evts, PieceLockedEvent{Type: prev.Current.Type, Total: s.pieces})
	}
	if next.Lines > prev.Lines {
		ev := LinesClearedEvent{
			Count:  next.Lines - prev.Lines,
			Scored: next.Score - prev.Score,
		}
		if next.Board != prev.Board {
			ev.Rows = append([]int(nil), next.Anim.ClearingLines...)
		}
		evts = append(evts, ev)
	}
	if next.Level > prev.Level {
		evts = append(evts, LevelUpEvent{
			Level:   next.Level,
			Gravity: s.eng.Config().DropSpeed(next.Level),
		})
	}
	if next.Held != prev.Held && next.Held != nil {
		evts = append(evts, PieceHeldEvent{Type: next.Held.Type})
	}
	if next.Current != prev.Current && next.Current != nil &&
		(prev.Current == nil || next.Board != prev.Board) {
		evts = append(evts, PieceSpawnedEvent{Type: next.Current.Type, Next: next.Next.Type})
	}
	if next.Status == tetris.StatusGameOver && prev.Status != tetris.StatusGameOver {
		evts = append(evts, GameOverEvent{
			Score:  next.Score,
			Level:  next.Level,
			Lines:  next.Lines,
			Pieces: s.pieces,
		})
	}
	return evts
}
