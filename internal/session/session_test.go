package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/tetris-engine/internal/tetris"
)

// fastConfig shortens gravity so tests can drive whole games with
// millisecond advances.
func fastConfig() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.BaseDropSpeed = 10 * time.Millisecond
	cfg.MinDropSpeed = time.Millisecond
	return cfg
}

func startAt() time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

func TestStartSpawnsFirstPiece(t *testing.T) {
	eng := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.PieceT, tetris.PieceI))
	s := New(eng, Options{LockDelay: DefaultLockDelay})

	evts := s.Start(startAt())
	if s.State().Status != tetris.StatusPlaying {
		t.Fatalf("status = %v, expected %v", s.State().Status, tetris.StatusPlaying)
	}

	var spawned *PieceSpawnedEvent
	for _, e := range evts {
		if ev, ok := e.(PieceSpawnedEvent); ok {
			spawned = &ev
		}
	}
	if spawned == nil {
		t.Fatal("start emitted no spawn event")
	}
	if spawned.Type != tetris.PieceT || spawned.Next != tetris.PieceI {
		t.Errorf("spawned %v with next %v, expected T with next I", spawned.Type, spawned.Next)
	}
}

func TestGravityStepsOnInterval(t *testing.T) {
	eng := tetris.NewEngine(fastConfig(), tetris.NewSequenceSource(tetris.PieceO))
	s := New(eng, Options{LockDelay: time.Second})
	now := startAt()
	s.Start(now)
	startY := s.State().Current.Pos.Y

	s.Advance(now.Add(10 * time.Millisecond))
	if got := s.State().Current.Pos.Y; got != startY+1 {
		t.Errorf("piece at Y=%d after one interval, expected %d", got, startY+1)
	}

	s.Advance(now.Add(15 * time.Millisecond))
	if got := s.State().Current.Pos.Y; got != startY+1 {
		t.Errorf("piece at Y=%d after a half interval, expected still %d", got, startY+1)
	}

	s.Advance(now.Add(20 * time.Millisecond))
	if got := s.State().Current.Pos.Y; got != startY+2 {
		t.Errorf("piece at Y=%d after two intervals, expected %d", got, startY+2)
	}
}

func TestLockDelayThenAutoSpawn(t *testing.T) {
	eng := tetris.NewEngine(fastConfig(), tetris.NewSequenceSource(tetris.PieceO, tetris.PieceT, tetris.PieceI))
	s := New(eng, Options{LockDelay: 30 * time.Millisecond})
	now := startAt()
	s.Start(now)

	var locked *PieceLockedEvent
	var spawnedAfter *PieceSpawnedEvent
	steps := 0
	for locked == nil && steps < 60 {
		now = now.Add(10 * time.Millisecond)
		steps++
		for _, e := range s.Advance(now) {
			switch ev := e.(type) {
			case PieceLockedEvent:
				locked = &ev
			case PieceSpawnedEvent:
				spawnedAfter = &ev
			}
		}
	}

	if locked == nil {
		t.Fatal("piece never locked")
	}
	if locked.Type != tetris.PieceO || locked.Total != 1 {
		t.Errorf("locked %v as piece %d, expected O as piece 1", locked.Type, locked.Total)
	}
	// 19 gravity steps to the floor plus three resting advances for the delay
	if steps != 22 {
		t.Errorf("lock took %d advances, expected 22", steps)
	}
	if spawnedAfter == nil || spawnedAfter.Type != tetris.PieceT {
		t.Error("successor piece was not spawned after the lock")
	}
	if !s.State().Board.Cell(3, 19).Filled {
		t.Error("locked piece not on the board")
	}
	if s.Pieces() != 1 {
		t.Errorf("pieces = %d, expected 1", s.Pieces())
	}
}

func TestMovementPostponesLock(t *testing.T) {
	eng := tetris.NewEngine(fastConfig(), tetris.NewSequenceSource(tetris.PieceO))
	s := New(eng, Options{LockDelay: 20 * time.Millisecond})
	now := startAt()
	s.Start(now)

	// Ride gravity down until the piece rests on the floor.
	for !tetris.ShouldLock(s.State().Board, *s.State().Current) {
		now = now.Add(10 * time.Millisecond)
		s.Advance(now)
	}

	now = now.Add(10 * time.Millisecond)
	s.Advance(now)
	if s.resting != 10*time.Millisecond {
		t.Fatalf("resting = %v, expected 10ms", s.resting)
	}

	s.Do(tetris.ActionMoveLeft)
	if s.resting != 0 {
		t.Errorf("resting = %v after a successful move, expected 0", s.resting)
	}

	now = now.Add(10 * time.Millisecond)
	s.Advance(now)
	if s.Pieces() != 0 {
		t.Error("piece locked despite the movement reset")
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	eng := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.PieceO, tetris.PieceT))
	s := New(eng, Options{LockDelay: DefaultLockDelay})
	s.Start(startAt())

	evts := s.Do(tetris.ActionHardDrop)
	var sawLock, sawSpawn bool
	for _, e := range evts {
		switch e.(type) {
		case PieceLockedEvent:
			sawLock = true
		case PieceSpawnedEvent:
			sawSpawn = true
		}
	}
	if !sawLock || !sawSpawn {
		t.Errorf("hard drop events lock=%v spawn=%v, expected both", sawLock, sawSpawn)
	}
	if s.Pieces() != 1 {
		t.Errorf("pieces = %d, expected 1", s.Pieces())
	}
}

func TestHoldEmitsEvent(t *testing.T) {
	eng := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.PieceZ, tetris.PieceJ, tetris.PieceL))
	s := New(eng, Options{LockDelay: DefaultLockDelay})
	s.Start(startAt())

	evts := s.Do(tetris.ActionHold)
	var held *PieceHeldEvent
	for _, e := range evts {
		if ev, ok := e.(PieceHeldEvent); ok {
			held = &ev
		}
	}
	if held == nil || held.Type != tetris.PieceZ {
		t.Errorf("hold events = %v, expected the Z to be stashed", evts)
	}
	for _, e := range evts {
		if _, ok := e.(PieceSpawnedEvent); ok {
			t.Error("hold promotion reported as a spawn")
		}
	}
}

// Scripted single clear: two I pieces and an O fill the bottom row.
func TestLinesClearedEvent(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.SoftDropUnit = 0
	cfg.HardDropUnit = 0
	eng := tetris.NewEngine(cfg, tetris.NewSequenceSource(tetris.PieceI, tetris.PieceI, tetris.PieceO, tetris.PieceT))
	s := New(eng, Options{LockDelay: DefaultLockDelay})
	s.Start(startAt())

	for range 3 {
		s.Do(tetris.ActionMoveLeft)
	}
	s.Do(tetris.ActionHardDrop)
	s.Do(tetris.ActionMoveRight)
	s.Do(tetris.ActionHardDrop)
	for range 5 {
		s.Do(tetris.ActionMoveRight)
	}
	evts := s.Do(tetris.ActionHardDrop)

	var cleared *LinesClearedEvent
	for _, e := range evts {
		if ev, ok := e.(LinesClearedEvent); ok {
			cleared = &ev
		}
	}
	if cleared == nil {
		t.Fatal("no lines-cleared event after completing a row")
	}
	if cleared.Count != 1 || cleared.Scored != 100 {
		t.Errorf("cleared %d lines for %d points, expected 1 for 100", cleared.Count, cleared.Scored)
	}
	if len(cleared.Rows) != 1 || cleared.Rows[0] != 19 {
		t.Errorf("cleared rows = %v, expected [19]", cleared.Rows)
	}
}

func TestGameOverEventOnce(t *testing.T) {
	eng := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.PieceO))
	s := New(eng, Options{LockDelay: DefaultLockDelay})
	s.Start(startAt())

	var overs []GameOverEvent
	for i := 0; i < 15 && !s.Over(); i++ {
		for _, e := range s.Do(tetris.ActionHardDrop) {
			if ev, ok := e.(GameOverEvent); ok {
				overs = append(overs, ev)
			}
		}
	}

	if len(overs) != 1 {
		t.Fatalf("saw %d game-over events, expected exactly 1", len(overs))
	}
	// O pieces stack two rows at a time in the spawn columns
	if overs[0].Pieces != 10 {
		t.Errorf("game ended after %d pieces, expected 10", overs[0].Pieces)
	}
	if overs[0].Score != s.State().Score || overs[0].Lines != s.State().Lines {
		t.Error("game-over event disagrees with the final state")
	}
}

func TestRestartResetsSession(t *testing.T) {
	eng := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.PieceO))
	s := New(eng, Options{LockDelay: DefaultLockDelay})
	s.Start(startAt())
	for i := 0; i < 15 && !s.Over(); i++ {
		s.Do(tetris.ActionHardDrop)
	}
	if !s.Over() {
		t.Fatal("setup failed: game did not end")
	}

	s.Do(tetris.ActionRestart)
	if s.State().Status != tetris.StatusReady {
		t.Errorf("status = %v after restart, expected %v", s.State().Status, tetris.StatusReady)
	}
	if s.Pieces() != 0 {
		t.Errorf("pieces = %d after restart, expected 0", s.Pieces())
	}
}

func TestResultSummary(t *testing.T) {
	eng := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewSequenceSource(tetris.PieceO, tetris.PieceT))
	s := New(eng, Options{LockDelay: DefaultLockDelay})
	t0 := startAt()
	s.Start(t0)
	s.Do(tetris.ActionHardDrop)

	res := s.Result(t0.Add(5 * time.Second))
	if res.Pieces != 1 {
		t.Errorf("result pieces = %d, expected 1", res.Pieces)
	}
	if res.Duration != 5*time.Second {
		t.Errorf("result duration = %v, expected 5s", res.Duration)
	}
	if res.Score != s.State().Score || res.Level != s.State().Level {
		t.Error("result disagrees with the state")
	}
}
