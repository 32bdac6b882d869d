package strategy

import (
	"golang.org/x/exp/rand"

	"gobblet/game"
)

// Random draws uniformly over the legal moves. The random source is owned by
// the strategy and seeded at construction, so games replay deterministically.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy seeded with seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) ChooseMove(state *game.GameState) game.Move {
	moves := mustMoves(state)
	return moves[r.rng.Intn(len(moves))]
}
