package sources

import "github.com/vovakirdan/tetris-engine/internal/tetris"

// Built-in randomizers.
const (
	Bag     = "bag"
	Uniform = "uniform"
)

func init() {
	Register(Bag, "7-bag randomizer, one of each piece per seven draws", func(seed int64) tetris.PieceSource {
		return tetris.NewBagSource(seed)
	})
	Register(Uniform, "uniform random draws, droughts possible", func(seed int64) tetris.PieceSource {
		return tetris.NewRandomSource(seed)
	})
}
