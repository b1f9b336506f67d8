package tetris

// Direction is a one-cell movement direction for a falling piece.
type Direction uint8

// Piece movement directions. Pieces never move up.
const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset of a one-cell move in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// CheckBoundaryCollision reports whether any occupied cell of the piece lies
// outside the horizontal bounds or below the floor. Cells in the spawn
// buffer (row < 0) do not collide with the top.
func CheckBoundaryCollision(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= BoardWidth {
			return true
		}
		if c.Y >= BoardHeight {
			return true
		}
	}
	return false
}

// CheckBlockCollision reports whether any occupied cell of the piece overlaps
// an occupied board cell. Rows above the visible grid are skipped.
func CheckBlockCollision(b *Board, p Piece) bool {
	for _, c := range p.Cells() {
		if c.Y < 0 || c.Y >= BoardHeight {
			continue
		}
		if c.X < 0 || c.X >= BoardWidth {
			continue
		}
		if b.cells[c.Y][c.X].Filled {
			return true
		}
	}
	return false
}

// HasCollision reports whether the piece collides with a boundary or with
// locked blocks.
func HasCollision(b *Board, p Piece) bool {
	return CheckBoundaryCollision(p) || CheckBlockCollision(b, p)
}

// CanMove reports whether a one-cell shift in the given direction is legal.
func CanMove(b *Board, p Piece, d Direction) bool {
	dx, dy := d.Delta()
	return !HasCollision(b, p.shifted(dx, dy))
}

// AttemptRotation tries to rotate the piece one step clockwise or
// counterclockwise, testing each wall-kick offset for the transition in
// order. It returns the first non-colliding candidate and true, or the
// unmodified piece and false when every offset collides. O pieces report
// success without changing.
func AttemptRotation(b *Board, p Piece, clockwise bool) (Piece, bool) {
	if p.Type == PieceO {
		return p, true
	}
	target := p.Rotation + 1
	if !clockwise {
		target = p.Rotation - 1
	}
	rotated := p.rotatedTo(target)
	for _, off := range kickOffsets(p.Type, p.Rotation, rotated.Rotation) {
		candidate := rotated.shifted(off.X, off.Y)
		if !HasCollision(b, candidate) {
			return candidate, true
		}
	}
	return p, false
}

// FindHardDropPosition returns the piece shifted down to its lowest legal
// position, or the piece itself when it is already resting.
func FindHardDropPosition(b *Board, p Piece) Piece {
	cur := p
	for {
		next := cur.shifted(0, 1)
		if HasCollision(b, next) {
			return cur
		}
		cur = next
	}
}

// CanSpawn reports whether the piece can legally occupy its current
// position, used to test spawn feasibility before a piece enters play.
func CanSpawn(b *Board, p Piece) bool {
	return !HasCollision(b, p)
}
