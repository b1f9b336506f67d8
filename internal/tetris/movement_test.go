package tetris

import "testing"

func TestMoveLeftBlockedReturnsInput(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceT, P(0, 10), 0)

	got := MoveLeft(b, p)
	if got != p {
		t.Errorf("blocked MoveLeft returned %+v, want the input piece unchanged", got)
	}
}

func TestMovesShiftOneCell(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceT, P(4, 10), 0)

	if got := MoveLeft(b, p); got.Pos != P(3, 10) {
		t.Errorf("MoveLeft Pos = %v, want (3,10)", got.Pos)
	}
	if got := MoveRight(b, p); got.Pos != P(5, 10) {
		t.Errorf("MoveRight Pos = %v, want (5,10)", got.Pos)
	}
	if got := MoveDown(b, p); got.Pos != P(4, 11) {
		t.Errorf("MoveDown Pos = %v, want (4,11)", got.Pos)
	}
}

func TestMoveDownBlockedOnFloor(t *testing.T) {
	b := NewBoard()
	resting := FindHardDropPosition(b, SpawnPiece(PieceL))

	if got := MoveDown(b, resting); got != resting {
		t.Errorf("MoveDown through the floor returned %+v", got)
	}
}

func TestRotateHelpers(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceJ, P(4, 10), 0)

	cw := Rotate(b, p)
	if cw.Rotation != 1 {
		t.Errorf("Rotate rotation = %d, want 1", cw.Rotation)
	}
	ccw := RotateCCW(b, p)
	if ccw.Rotation != 3 {
		t.Errorf("RotateCCW rotation = %d, want 3", ccw.Rotation)
	}
}

func TestHardDropFromSpawn(t *testing.T) {
	b := NewBoard()
	p := SpawnPiece(PieceO)

	dropped, dist := HardDrop(b, p)
	if dropped.Pos.Y != 18 {
		t.Errorf("dropped rest Y = %d, want 18", dropped.Pos.Y)
	}
	if dist != 19 {
		t.Errorf("drop distance = %d, want 19", dist)
	}

	again, zero := HardDrop(b, dropped)
	if zero != 0 || again != dropped {
		t.Errorf("hard drop of a resting piece moved it: dist %d", zero)
	}
}

func TestCanMoveAnywhere(t *testing.T) {
	b := NewBoard()
	if !CanMoveAnywhere(b, NewPiece(PieceT, P(4, 10), 0)) {
		t.Error("piece in open space should have moves")
	}

	// O snug in a floor pocket: walls both sides, floor below, rotation a no-op.
	pocket := NewBoard()
	fill(pocket, 3, 18)
	fill(pocket, 3, 19)
	fill(pocket, 6, 18)
	fill(pocket, 6, 19)
	trapped := NewPiece(PieceO, P(4, 18), 0)
	if CanMoveAnywhere(pocket, trapped) {
		t.Error("boxed-in O should have no moves")
	}
}

func TestShouldLock(t *testing.T) {
	b := NewBoard()
	resting := FindHardDropPosition(b, SpawnPiece(PieceS))
	if !ShouldLock(b, resting) {
		t.Error("resting piece should lock")
	}
	if ShouldLock(b, SpawnPiece(PieceS)) {
		t.Error("freshly spawned piece should not lock")
	}
}

func TestValidMoves(t *testing.T) {
	b := NewBoard()
	corner := NewPiece(PieceO, P(0, 18), 0)

	moves := ValidMoves(b, corner)
	if len(moves) != 1 || moves[0] != DirRight {
		t.Errorf("ValidMoves in the floor corner = %v, want [right]", moves)
	}

	open := ValidMoves(b, NewPiece(PieceO, P(4, 10), 0))
	if len(open) != 3 {
		t.Errorf("ValidMoves in open space = %v, want all three", open)
	}
}

func TestGhostPiece(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	p := SpawnPiece(PieceT)

	ghost := GhostPiece(b, p)
	if ghost != FindHardDropPosition(b, p) {
		t.Error("ghost should match the hard-drop position")
	}
	if ghost.Pos.X != p.Pos.X || ghost.Rotation != p.Rotation {
		t.Error("ghost should only differ from the piece vertically")
	}
}
