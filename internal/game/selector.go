package game

import (
	"math/rand"

	"github.com/artificialis/othello-gen/internal/game/core"
)

// Selector chooses one move from a non-empty set of legal moves. The
// engine never calls a Selector with an empty slice.
type Selector interface {
	Select(moves []core.Coordinate) core.Coordinate
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(moves []core.Coordinate) core.Coordinate

func (f SelectorFunc) Select(moves []core.Coordinate) core.Coordinate { return f(moves) }

// RandomSelector picks uniformly at random from the legal moves. The rng
// is owned by the selector's game; it must not be shared across games
// running concurrently.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector backed by the given source.
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: rng}
}

func (s *RandomSelector) Select(moves []core.Coordinate) core.Coordinate {
	return moves[s.rng.Intn(len(moves))]
}

// FirstSelector always picks the first legal move in scan order. Useful
// for deterministic replays and tests.
type FirstSelector struct{}

func (FirstSelector) Select(moves []core.Coordinate) core.Coordinate { return moves[0] }
