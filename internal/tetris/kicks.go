package tetris

// SRS wall-kick tables. A rotation attempt tries each offset in order and
// takes the first placement with no collision. Offsets are in board
// coordinates (+X right, +Y down), which flips the Y sign relative to the
// usual SRS notation. The JLSTZ group shares one table; I has its own; O
// never rotates and gets the single zero offset.

// kickKey is a directed rotation transition between normalized states.
type kickKey struct {
	from, to int
}

var jlstzKicks = map[kickKey][5]Position{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[kickKey][5]Position{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var oKick = [1]Position{{0, 0}}

// kickOffsets returns the ordered offsets to try for a piece type rotating
// from one state to another. Both states must be normalized to [0,4).
func kickOffsets(t PieceType, from, to int) []Position {
	switch t {
	case PieceO:
		return oKick[:]
	case PieceI:
		offs := iKicks[kickKey{from, to}]
		return offs[:]
	default:
		offs := jlstzKicks[kickKey{from, to}]
		return offs[:]
	}
}
