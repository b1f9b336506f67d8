package tetris

import "math/rand"

// PieceSource produces the type of each new piece. It is the engine's only
// impure capability; swapping in a deterministic source makes whole games
// replayable action for action.
type PieceSource interface {
	Next() PieceType
}

// RandomSource draws uniformly distributed piece types from a seeded
// generator.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a uniform source from a seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type.
func (s *RandomSource) Next() PieceType {
	return PieceType(s.rng.Intn(PieceCount))
}

// BagSource deals pieces in shuffled bags containing one of each type, the
// "7-bag" randomizer: every type appears exactly once per seven draws, which
// bounds droughts of any single type.
type BagSource struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagSource creates a 7-bag source from a seed.
func NewBagSource(seed int64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type, refilling and reshuffling the bag when
// it empties.
func (s *BagSource) Next() PieceType {
	if len(s.bag) == 0 {
		s.bag = make([]PieceType, 0, PieceCount)
		for t := range PieceCount {
			s.bag = append(s.bag, PieceType(t))
		}
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	next := s.bag[0]
	s.bag = s.bag[1:]
	return next
}

// SequenceSource replays a fixed sequence of piece types, cycling when it
// runs out, for scripting exact games.
type SequenceSource struct {
	seq []PieceType
	i   int
}

// NewSequenceSource creates a source that cycles through the given types.
// An empty sequence falls back to an endless run of I pieces.
func NewSequenceSource(types ...PieceType) *SequenceSource {
	if len(types) == 0 {
		types = []PieceType{PieceI}
	}
	return &SequenceSource{seq: append([]PieceType(nil), types...)}
}

// Next returns the next piece type in the cycle.
func (s *SequenceSource) Next() PieceType {
	t := s.seq[s.i%len(s.seq)]
	s.i++
	return t
}
