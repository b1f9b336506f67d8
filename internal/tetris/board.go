package tetris

// Visible board dimensions. Pieces may also occupy negative rows (the spawn
// buffer) before entering the visible grid.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a single board cell: empty, or locked with the type of the piece
// that filled it.
type Cell struct {
	Filled bool
	Type   PieceType
}

// Board is the fixed-size playfield. Boards are persistent values: every
// producing operation returns a new board, or the identical pointer when
// nothing changed, so consumers can detect change by pointer comparison.
// The zero value is an empty board.
type Board struct {
	cells [BoardHeight][BoardWidth]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Cell returns the cell at (x, y). Out-of-range coordinates, including the
// spawn buffer, read as empty.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return Cell{}
	}
	return b.cells[y][x]
}

// IsValidPosition reports whether the piece's occupied cells all lie inside
// the horizontal bounds, above the floor, and on empty cells. Cells in the
// spawn buffer (row < 0) are exempt from occupancy and floor checks.
func (b *Board) IsValidPosition(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= BoardWidth {
			return false
		}
		if c.Y >= BoardHeight {
			return false
		}
		if c.Y >= 0 && b.cells[c.Y][c.X].Filled {
			return false
		}
	}
	return true
}

// Place returns a new board with the piece's cells stamped with its type.
// Cells still in the spawn buffer are silently dropped. The receiver is
// never mutated.
func (b *Board) Place(p Piece) *Board {
	nb := *b
	for _, c := range p.Cells() {
		if c.Y < 0 || c.Y >= BoardHeight || c.X < 0 || c.X >= BoardWidth {
			continue
		}
		nb.cells[c.Y][c.X] = Cell{Filled: true, Type: p.Type}
	}
	return &nb
}

// RowComplete reports whether every cell in the row is occupied.
func (b *Board) RowComplete(y int) bool {
	for x := range BoardWidth {
		if !b.cells[y][x].Filled {
			return false
		}
	}
	return true
}

// CompleteRows returns the indices of fully occupied rows in ascending order.
func (b *Board) CompleteRows() []int {
	var rows []int
	for y := range BoardHeight {
		if b.RowComplete(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes all complete rows, shifts the rows above them down, and
// tops the board up with empty rows. It returns the new board and the cleared
// row indices (ascending, pre-clear numbering). When no rows are complete it
// returns the same board pointer and a nil slice.
func (b *Board) ClearLines() (*Board, []int) {
	cleared := b.CompleteRows()
	if len(cleared) == 0 {
		return b, nil
	}
	var nb Board
	dst := BoardHeight - 1
	for y := BoardHeight - 1; y >= 0; y-- {
		if b.RowComplete(y) {
			continue
		}
		nb.cells[dst] = b.cells[y]
		dst--
	}
	return &nb, cleared
}

// IsGameOver reports whether the stack has reached the spawn area: any
// occupied cell in the top two rows within the spawn footprint columns.
// Stacks touching rows 0-1 outside those columns do not end the game.
func (b *Board) IsGameOver() bool {
	for y := range 2 {
		for x := SpawnColumn; x < SpawnColumn+4; x++ {
			if b.cells[y][x].Filled {
				return true
			}
		}
	}
	return false
}

// ColumnHeights returns, per column, the height of the topmost occupied cell
// measured from the floor (board height minus its row index), or 0 for an
// empty column.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, BoardWidth)
	for x := range BoardWidth {
		for y := range BoardHeight {
			if b.cells[y][x].Filled {
				heights[x] = BoardHeight - y
				break
			}
		}
	}
	return heights
}
