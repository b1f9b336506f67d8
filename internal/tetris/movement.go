package tetris

// Movement primitives. These orchestrate the collision layer and never
// fail loudly: a blocked move returns the piece unchanged, so callers can
// apply them unconditionally.

// MoveLeft shifts the piece one cell left if legal.
func MoveLeft(b *Board, p Piece) Piece {
	if CanMove(b, p, DirLeft) {
		return p.shifted(-1, 0)
	}
	return p
}

// MoveRight shifts the piece one cell right if legal.
func MoveRight(b *Board, p Piece) Piece {
	if CanMove(b, p, DirRight) {
		return p.shifted(1, 0)
	}
	return p
}

// MoveDown shifts the piece one cell down if legal.
func MoveDown(b *Board, p Piece) Piece {
	if CanMove(b, p, DirDown) {
		return p.shifted(0, 1)
	}
	return p
}

// Rotate rotates the piece clockwise with wall kicks, or returns it
// unchanged when no kick succeeds.
func Rotate(b *Board, p Piece) Piece {
	rotated, _ := AttemptRotation(b, p, true)
	return rotated
}

// RotateCCW rotates the piece counterclockwise with wall kicks, or returns
// it unchanged when no kick succeeds.
func RotateCCW(b *Board, p Piece) Piece {
	rotated, _ := AttemptRotation(b, p, false)
	return rotated
}

// HardDrop returns the piece at its lowest legal position and the number of
// rows travelled to get there.
func HardDrop(b *Board, p Piece) (Piece, int) {
	dropped := FindHardDropPosition(b, p)
	return dropped, dropped.Pos.Y - p.Pos.Y
}

// CanMoveAnywhere reports whether any move or rotation is still available
// to the piece. Lock-delay policies use this to tell a stuck piece from one
// that can still slide or spin free. A rotation only counts when it actually
// displaces the piece, so O pieces (whose rotation is a fixed no-op) do not
// read as mobile.
func CanMoveAnywhere(b *Board, p Piece) bool {
	if CanMove(b, p, DirLeft) || CanMove(b, p, DirRight) || CanMove(b, p, DirDown) {
		return true
	}
	if rp, ok := AttemptRotation(b, p, true); ok && rp != p {
		return true
	}
	if rp, ok := AttemptRotation(b, p, false); ok && rp != p {
		return true
	}
	return false
}

// ShouldLock reports whether the piece can no longer move down.
func ShouldLock(b *Board, p Piece) bool {
	return !CanMove(b, p, DirDown)
}

// ValidMoves returns the subset of directions the piece can currently move.
func ValidMoves(b *Board, p Piece) []Direction {
	var moves []Direction
	for _, d := range []Direction{DirLeft, DirRight, DirDown} {
		if CanMove(b, p, d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// GhostPiece returns the landing position of the piece, for presentation
// layers that preview where a hard drop would rest.
func GhostPiece(b *Board, p Piece) Piece {
	return FindHardDropPosition(b, p)
}
