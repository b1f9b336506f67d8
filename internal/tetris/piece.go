package tetris

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

// The seven tetromino types.
const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of distinct tetromino types.
const PieceCount = 7

// String returns the canonical single-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// ParsePieceType maps a single-letter name back to its piece type. The
// second return is false for anything that is not one of the seven letters.
func ParsePieceType(s string) (PieceType, bool) {
	switch s {
	case "I":
		return PieceI, true
	case "O":
		return PieceO, true
	case "T":
		return PieceT, true
	case "S":
		return PieceS, true
	case "Z":
		return PieceZ, true
	case "J":
		return PieceJ, true
	case "L":
		return PieceL, true
	default:
		return 0, false
	}
}

// Spawn defaults. New pieces enter centered above the visible grid; row -1
// keeps the bounding box in the spawn buffer until gravity pulls it down.
const (
	SpawnColumn   = BoardWidth/2 - 2
	SpawnRow      = -1
	SpawnRotation = 0
)

// Shape is the occupancy matrix of a piece at one rotation state. Only the
// first Size rows and columns are meaningful; I uses a 4x4 box, O a 2x2 box,
// and the JLSTZ group a 3x3 box. Shapes are fixed lookup data, never built
// at runtime.
type Shape struct {
	Size  int
	Cells [4][4]bool
}

// Piece is a tetromino in play: its type, the shape matrix for the current
// rotation, the board position of the shape's top-left corner, and the
// rotation state in [0,4). Piece is a comparable value; movement and
// rotation return new values and never mutate.
type Piece struct {
	Type     PieceType
	Shape    Shape
	Pos      Position
	Rotation int
}

// NewPiece creates a piece of the given type at an explicit position and
// rotation. Rotation is normalized mod 4.
func NewPiece(t PieceType, pos Position, rotation int) Piece {
	r := normalizeRotation(rotation)
	return Piece{
		Type:     t,
		Shape:    shapeOf(t, r),
		Pos:      pos,
		Rotation: r,
	}
}

// SpawnPiece creates a piece of the given type at the spawn position.
func SpawnPiece(t PieceType) Piece {
	return NewPiece(t, P(SpawnColumn, SpawnRow), SpawnRotation)
}

// Cells returns the absolute board positions of the piece's occupied cells.
func (p Piece) Cells() []Position {
	cells := make([]Position, 0, 4)
	for r := range p.Shape.Size {
		for c := range p.Shape.Size {
			if p.Shape.Cells[r][c] {
				cells = append(cells, P(p.Pos.X+c, p.Pos.Y+r))
			}
		}
	}
	return cells
}

// shifted returns a copy of the piece translated by (dx, dy).
func (p Piece) shifted(dx, dy int) Piece {
	p.Pos = p.Pos.Translate(dx, dy)
	return p
}

// rotatedTo returns a copy of the piece at the target rotation state with
// the matching shape. The position is unchanged; wall-kick offsets are the
// caller's concern.
func (p Piece) rotatedTo(rotation int) Piece {
	p.Rotation = normalizeRotation(rotation)
	p.Shape = shapeOf(p.Type, p.Rotation)
	return p
}

// normalizeRotation maps any rotation value into [0,4).
func normalizeRotation(r int) int {
	return ((r % 4) + 4) % 4
}
