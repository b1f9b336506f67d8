// Package tetris implements a deterministic Tetris engine: the board model,
// SRS-style piece rotation with wall kicks, movement primitives, line-clear
// scoring, and a validated state-transition reducer. It contains no external
// dependencies (especially no UI toolkit) so the game logic stays pure,
// testable, and replayable.
package tetris

// Position represents a 2D board coordinate. X grows rightward, Y grows
// downward; negative Y is the spawn buffer above the visible grid.
type Position struct {
	X, Y int
}

// P creates a position from its coordinates.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Translate returns the position shifted by (dx, dy).
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
