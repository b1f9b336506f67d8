package tetris

// Shape tables for every (type, rotation) pair. Rotation states follow the
// SRS convention: 0 = spawn, 1 = clockwise, 2 = 180, 3 = counterclockwise.
// Each entry is drawn with 'X' for occupied cells so the matrices can be
// checked by eye; they are decoded once into shapeTable at package load.
var shapeArt = [PieceCount][4][]string{
	PieceI: {
		{"....", "XXXX", "....", "...."},
		{"..X.", "..X.", "..X.", "..X."},
		{"....", "....", "XXXX", "...."},
		{".X..", ".X..", ".X..", ".X.."},
	},
	PieceO: {
		{"XX", "XX"},
		{"XX", "XX"},
		{"XX", "XX"},
		{"XX", "XX"},
	},
	PieceT: {
		{".X.", "XXX", "..."},
		{".X.", ".XX", ".X."},
		{"...", "XXX", ".X."},
		{".X.", "XX.", ".X."},
	},
	PieceS: {
		{".XX", "XX.", "..."},
		{".X.", ".XX", "..X"},
		{"...", ".XX", "XX."},
		{"X..", "XX.", ".X."},
	},
	PieceZ: {
		{"XX.", ".XX", "..."},
		{"..X", ".XX", ".X."},
		{"...", "XX.", ".XX"},
		{".X.", "XX.", "X.."},
	},
	PieceJ: {
		{"X..", "XXX", "..."},
		{".XX", ".X.", ".X."},
		{"...", "XXX", "..X"},
		{".X.", ".X.", "XX."},
	},
	PieceL: {
		{"..X", "XXX", "..."},
		{".X.", ".X.", ".XX"},
		{"...", "XXX", "X.."},
		{"XX.", ".X.", ".X."},
	},
}

var shapeTable = buildShapeTable()

func buildShapeTable() [PieceCount][4]Shape {
	var table [PieceCount][4]Shape
	for t := range PieceCount {
		for r := range 4 {
			art := shapeArt[t][r]
			s := Shape{Size: len(art)}
			for row, line := range art {
				for col, ch := range line {
					s.Cells[row][col] = ch == 'X'
				}
			}
			table[t][r] = s
		}
	}
	return table
}

// shapeOf returns the shape matrix for a piece type at a rotation state.
// The rotation must already be normalized to [0,4).
func shapeOf(t PieceType, rotation int) Shape {
	return shapeTable[t][rotation]
}
