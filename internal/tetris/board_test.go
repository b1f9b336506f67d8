package tetris

import "testing"

// fill marks a single cell as occupied.
func fill(b *Board, x, y int) {
	b.cells[y][x] = Cell{Filled: true, Type: PieceL}
}

// fillRow occupies an entire row except the listed columns.
func fillRow(b *Board, y int, skip ...int) {
	for x := range BoardWidth {
		skipped := false
		for _, s := range skip {
			if x == s {
				skipped = true
				break
			}
		}
		if !skipped {
			fill(b, x, y)
		}
	}
}

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard()
	for y := range BoardHeight {
		for x := range BoardWidth {
			if b.Cell(x, y).Filled {
				t.Fatalf("new board has occupied cell at (%d,%d)", x, y)
			}
		}
	}
}

func TestIsValidPosition(t *testing.T) {
	occupied := NewBoard()
	fill(occupied, 4, 0)

	tests := []struct {
		name  string
		board *Board
		piece Piece
		want  bool
	}{
		{"inside empty board", NewBoard(), NewPiece(PieceO, P(0, 0), 0), true},
		{"past left wall", NewBoard(), NewPiece(PieceO, P(-1, 5), 0), false},
		{"past right wall", NewBoard(), NewPiece(PieceO, P(9, 5), 0), false},
		{"resting on floor", NewBoard(), NewPiece(PieceO, P(8, 18), 0), true},
		{"through floor", NewBoard(), NewPiece(PieceO, P(8, 19), 0), false},
		{"entirely in spawn buffer", NewBoard(), NewPiece(PieceO, P(4, -2), 0), true},
		{"straddling buffer over empty cells", NewBoard(), NewPiece(PieceO, P(4, -1), 0), true},
		{"straddling buffer over occupied cell", occupied, NewPiece(PieceO, P(4, -1), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsValidPosition(tt.piece); got != tt.want {
				t.Errorf("IsValidPosition(%v at %v) = %v, want %v", tt.piece.Type, tt.piece.Pos, got, tt.want)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceT, P(3, 17), 0)

	nb := b.Place(p)

	if nb == b {
		t.Fatal("Place returned the receiver instead of a new board")
	}
	for y := range BoardHeight {
		for x := range BoardWidth {
			if b.Cell(x, y).Filled {
				t.Fatalf("Place mutated the input board at (%d,%d)", x, y)
			}
		}
	}
	// T at rotation 0: nub on top, bar below.
	for _, c := range []Position{{4, 17}, {3, 18}, {4, 18}, {5, 18}} {
		cell := nb.Cell(c.X, c.Y)
		if !cell.Filled || cell.Type != PieceT {
			t.Errorf("cell (%d,%d) = %+v, want filled T", c.X, c.Y, cell)
		}
	}
}

func TestPlaceDropsSpawnBufferCells(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceO, P(4, -1), 0)

	nb := b.Place(p)

	count := 0
	for y := range BoardHeight {
		for x := range BoardWidth {
			if nb.Cell(x, y).Filled {
				count++
			}
		}
	}
	if count != 2 {
		t.Errorf("stamped cell count = %d, want 2 (buffer row dropped)", count)
	}
	if !nb.Cell(4, 0).Filled || !nb.Cell(5, 0).Filled {
		t.Error("visible half of the piece was not stamped at row 0")
	}
}

func TestRowComplete(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fillRow(b, 18, 4)

	if !b.RowComplete(19) {
		t.Error("full row 19 not reported complete")
	}
	if b.RowComplete(18) {
		t.Error("row 18 with a gap reported complete")
	}
	if b.RowComplete(0) {
		t.Error("empty row 0 reported complete")
	}
}

func TestCompleteRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fillRow(b, 17)
	fillRow(b, 18, 0)

	rows := b.CompleteRows()
	if len(rows) != 2 || rows[0] != 17 || rows[1] != 19 {
		t.Errorf("CompleteRows() = %v, want [17 19]", rows)
	}
}

func TestClearLinesNoneComplete(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 3)

	nb, cleared := b.ClearLines()
	if nb != b {
		t.Error("ClearLines with nothing to clear should return the same board pointer")
	}
	if len(cleared) != 0 {
		t.Errorf("cleared rows = %v, want none", cleared)
	}
}

func TestClearLinesShiftsStackDown(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fill(b, 2, 18)

	nb, cleared := b.ClearLines()

	if len(cleared) != 1 || cleared[0] != 19 {
		t.Fatalf("cleared rows = %v, want [19]", cleared)
	}
	if nb == b {
		t.Fatal("ClearLines should return a new board when rows clear")
	}
	if !nb.Cell(2, 19).Filled {
		t.Error("block above the cleared row did not shift down")
	}
	if nb.Cell(2, 18).Filled {
		t.Error("shifted block still present at its old row")
	}
}

func TestClearLinesMultipleRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fillRow(b, 17)
	fill(b, 6, 18)

	nb, cleared := b.ClearLines()

	if len(cleared) != 2 || cleared[0] != 17 || cleared[1] != 19 {
		t.Fatalf("cleared rows = %v, want [17 19]", cleared)
	}
	// The surviving row between the two cleared ones lands on the floor.
	if !nb.Cell(6, 19).Filled {
		t.Error("surviving row did not land on the floor")
	}
	for y := range 19 {
		for x := range BoardWidth {
			if nb.Cell(x, y).Filled {
				t.Errorf("unexpected occupied cell at (%d,%d) after clear", x, y)
			}
		}
	}
}

func TestClearLinesIdempotent(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fillRow(b, 18)
	fill(b, 0, 17)

	nb, cleared := b.ClearLines()
	if len(cleared) != 2 {
		t.Fatalf("first pass cleared %d rows, want 2", len(cleared))
	}

	nb2, cleared2 := nb.ClearLines()
	if nb2 != nb {
		t.Error("second pass should return the same board pointer")
	}
	if len(cleared2) != 0 {
		t.Errorf("second pass cleared %v, want none", cleared2)
	}
}

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"footprint left edge row 0", 3, 0, true},
		{"footprint right edge row 1", 6, 1, true},
		{"inside footprint row 1", 4, 1, true},
		{"left of footprint", 2, 0, false},
		{"right of footprint", 7, 1, false},
		{"footprint column row 2", 4, 2, false},
		{"far corner", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			fill(b, tt.x, tt.y)
			if got := b.IsGameOver(); got != tt.want {
				t.Errorf("IsGameOver with block at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if NewBoard().IsGameOver() {
		t.Error("empty board reported game over")
	}
}

func TestColumnHeights(t *testing.T) {
	b := NewBoard()
	fill(b, 0, 19)
	fill(b, 3, 15)
	fill(b, 3, 19)
	fill(b, 9, 0)

	heights := b.ColumnHeights()

	want := []int{1, 0, 0, 5, 0, 0, 0, 0, 0, 20}
	for x, h := range want {
		if heights[x] != h {
			t.Errorf("column %d height = %d, want %d", x, heights[x], h)
		}
	}
}
