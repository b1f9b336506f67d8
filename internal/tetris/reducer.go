package tetris

// Engine validates and applies actions to game states. It owns the two
// injected capabilities the transitions need, the tuning config and the
// piece source; everything else is a pure function of the input state.
//
// Apply never mutates its input. A valid action yields a new state that
// shares the pointers of every substructure the transition did not touch;
// an invalid action returns the input pointer itself, so callers can skip
// downstream work with a single pointer comparison.
type Engine struct {
	cfg Config
	src PieceSource
}

// NewEngine creates an engine with the given tuning and piece source.
func NewEngine(cfg Config, src PieceSource) *Engine {
	return &Engine{cfg: cfg, src: src}
}

// Config returns the engine's tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewGame returns the initial state: ready, empty board, no current piece,
// and one piece already drawn into the preview slot.
func (e *Engine) NewGame() *GameState {
	next := SpawnPiece(e.src.Next())
	return &GameState{
		Board:   NewBoard(),
		Next:    &next,
		CanHold: true,
		Level:   1,
		Status:  StatusReady,
		Anim:    Animation{LastAction: LastNone},
	}
}

// validAction is the transition guard: it decides from the current state
// alone whether an action may run. Everything it rejects becomes a
// same-pointer no-op in Apply.
func (e *Engine) validAction(s *GameState, a Action) bool {
	switch a.Kind {
	case ActionMoveLeft, ActionMoveRight, ActionMoveDown,
		ActionRotateCW, ActionRotateCCW, ActionHardDrop, ActionLock:
		return s.Status == StatusPlaying && s.Current != nil
	case ActionHold:
		return s.Status == StatusPlaying && s.Current != nil && s.CanHold
	case ActionPause:
		return s.Status == StatusPlaying
	case ActionResume:
		return s.Status == StatusPaused
	case ActionRestart:
		return true
	case ActionSpawn:
		return (s.Status == StatusReady || s.Status == StatusPlaying) && s.Current == nil
	case ActionTick:
		return s.Status == StatusPlaying
	case ActionClearLines:
		return s.Status == StatusPlaying && a.Lines > 0
	case ActionStartClearAnim, ActionEndClearAnim, ActionSetLastAction:
		return true
	default:
		return false
	}
}

// Apply runs one action against a state and returns the resulting state.
// Invalid actions return s unchanged (the same pointer).
func (e *Engine) Apply(s *GameState, a Action) *GameState {
	if !e.validAction(s, a) {
		return s
	}
	switch a.Kind {
	case ActionMoveLeft:
		return e.move(s, DirLeft)
	case ActionMoveRight:
		return e.move(s, DirRight)
	case ActionMoveDown:
		return e.moveDown(s)
	case ActionRotateCW:
		return e.rotate(s, true)
	case ActionRotateCCW:
		return e.rotate(s, false)
	case ActionHardDrop:
		return e.hardDrop(s)
	case ActionHold:
		return e.hold(s)
	case ActionPause:
		return e.setStatus(s, StatusPaused)
	case ActionResume:
		return e.resume(s)
	case ActionRestart:
		return e.NewGame()
	case ActionTick:
		return e.tick(s, a)
	case ActionLock:
		return e.lock(s)
	case ActionSpawn:
		return e.spawn(s)
	case ActionClearLines:
		return e.clearLines(s, a.Lines)
	case ActionStartClearAnim:
		return e.startClearAnim(s, a.Rows)
	case ActionEndClearAnim:
		return e.endClearAnim(s)
	case ActionSetLastAction:
		return e.setLastAction(s, a.Tag)
	default:
		return s
	}
}

// move shifts the current piece sideways when legal. The last-action tag is
// set whether or not the piece moved.
func (e *Engine) move(s *GameState, d Direction) *GameState {
	moved := *s.Current
	switch d {
	case DirLeft:
		moved = MoveLeft(s.Board, moved)
	case DirRight:
		moved = MoveRight(s.Board, moved)
	}
	ns := *s
	if moved != *s.Current {
		ns.Current = &moved
	}
	ns.Anim.LastAction = LastMove
	return &ns
}

// moveDown performs one soft-drop or gravity step. The drop bonus is only
// awarded when the piece actually descended, and the gravity timer restarts
// either way.
func (e *Engine) moveDown(s *GameState) *GameState {
	moved := MoveDown(s.Board, *s.Current)
	ns := *s
	if moved.Pos.Y > s.Current.Pos.Y {
		ns.Current = &moved
		ns.Score += e.cfg.SoftDropScore(1)
	}
	ns.DropTimer = 0
	ns.Anim.LastAction = LastMove
	return &ns
}

// rotate applies a wall-kicked rotation. The tag is set even when every
// kick failed and the piece is unchanged.
func (e *Engine) rotate(s *GameState, clockwise bool) *GameState {
	rotated, _ := AttemptRotation(s.Board, *s.Current, clockwise)
	ns := *s
	if rotated != *s.Current {
		ns.Current = &rotated
	}
	ns.Anim.LastAction = LastRotate
	return &ns
}

// hardDrop sends the piece to its resting position, stamps it, resolves
// line clears, and either ends the game or promotes the preview piece into
// play.
func (e *Engine) hardDrop(s *GameState) *GameState {
	dropped, dist := HardDrop(s.Board, *s.Current)
	stamped := s.Board.Place(dropped)
	out := e.cfg.ProcessLineClearing(stamped, s.Level, s.Score+e.cfg.HardDropScore(dist), s.Lines)

	ns := *s
	ns.Board = out.Board
	ns.Score = out.NewScore
	ns.Level = out.NewLevel
	ns.Lines = out.NewTotalLines
	ns.DropTimer = 0
	ns.Anim = Animation{
		LastAction:    LastHardDrop,
		ClearingLines: out.ClearedRows,
		Animating:     out.LinesCleared > 0,
	}
	if out.Board.IsGameOver() {
		ns.Status = StatusGameOver
		ns.Current = nil
		return &ns
	}
	promoted := *s.Next
	ns.Current = &promoted
	fresh := SpawnPiece(e.src.Next())
	ns.Next = &fresh
	ns.CanHold = true
	return &ns
}

// hold stashes the current piece. With an empty hold slot the preview piece
// enters play and a new preview is drawn; otherwise current and held swap.
// Every piece entering play or storage is reset to spawn defaults, and
// holding again is locked out until the next lock.
func (e *Engine) hold(s *GameState) *GameState {
	stored := SpawnPiece(s.Current.Type)
	ns := *s
	if s.Held == nil {
		promoted := *s.Next
		ns.Current = &promoted
		fresh := SpawnPiece(e.src.Next())
		ns.Next = &fresh
	} else {
		swapped := SpawnPiece(s.Held.Type)
		ns.Current = &swapped
	}
	ns.Held = &stored
	ns.CanHold = false
	return &ns
}

// setStatus returns a copy with only the status changed.
func (e *Engine) setStatus(s *GameState, status Status) *GameState {
	ns := *s
	ns.Status = status
	return &ns
}

// resume unpauses, and if no piece is in play (paused straight after a
// lock) promotes the preview piece so play can continue.
func (e *Engine) resume(s *GameState) *GameState {
	ns := *s
	ns.Status = StatusPlaying
	if s.Current == nil {
		promoted := *s.Next
		ns.Current = &promoted
		fresh := SpawnPiece(e.src.Next())
		ns.Next = &fresh
	}
	return &ns
}

// tick folds elapsed wall-clock time into the gravity timer. The first tick
// of a game only establishes the baseline timestamp.
func (e *Engine) tick(s *GameState, a Action) *GameState {
	ns := *s
	if !s.LastDrop.IsZero() {
		ns.DropTimer += a.At.Sub(s.LastDrop)
	}
	ns.LastDrop = a.At
	return &ns
}

// lock stamps the current piece onto the board, resolves line clears, and
// then checks the stacked board for game over. The hold lock-out lifts on
// every lock.
func (e *Engine) lock(s *GameState) *GameState {
	stamped := s.Board.Place(*s.Current)
	out := e.cfg.ProcessLineClearing(stamped, s.Level, s.Score, s.Lines)

	ns := *s
	ns.Board = out.Board
	ns.Score = out.NewScore
	ns.Level = out.NewLevel
	ns.Lines = out.NewTotalLines
	ns.Current = nil
	ns.CanHold = true
	ns.Anim = Animation{
		LastAction:    LastNone,
		ClearingLines: out.ClearedRows,
		Animating:     out.LinesCleared > 0,
	}
	if out.Board.IsGameOver() {
		ns.Status = StatusGameOver
	}
	return &ns
}

// spawn brings the preview piece into play after checking it can legally
// occupy the spawn position. On failure the board is left unstamped and the
// game ends with no piece in play.
func (e *Engine) spawn(s *GameState) *GameState {
	promoted := *s.Next
	ns := *s
	if !CanSpawn(s.Board, promoted) {
		ns.Status = StatusGameOver
		return &ns
	}
	ns.Current = &promoted
	fresh := SpawnPiece(e.src.Next())
	ns.Next = &fresh
	ns.Status = StatusPlaying
	ns.DropTimer = 0
	return &ns
}

// clearLines scores a caller-supplied clear count without touching the
// board, an escape hatch for driving the scoring formulas directly.
func (e *Engine) clearLines(s *GameState, lines int) *GameState {
	ns := *s
	ns.Score += e.cfg.LineScore(lines, s.Level)
	ns.Lines += lines
	ns.Level = e.cfg.Level(ns.Lines)
	return &ns
}

func (e *Engine) startClearAnim(s *GameState, rows []int) *GameState {
	ns := *s
	ns.Anim.ClearingLines = rows
	ns.Anim.Animating = true
	return &ns
}

func (e *Engine) endClearAnim(s *GameState) *GameState {
	ns := *s
	ns.Anim.ClearingLines = nil
	ns.Anim.Animating = false
	return &ns
}

func (e *Engine) setLastAction(s *GameState, tag LastAction) *GameState {
	ns := *s
	ns.Anim.LastAction = tag
	return &ns
}
