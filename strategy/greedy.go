package strategy

import "gobblet/game"

// Greedy weights for the fallback positional score.
const (
	greedyCenterWeight   = 2.0
	greedySizeWeight     = 1.0
	greedyExposureWeight = 0.5
)

// Greedy plays the immediate win when one exists, otherwise blocks an
// opponent win due next turn, otherwise maximizes a positional score that
// favors central cells and larger pieces while penalizing moves that leave
// its own pieces coverable.
type Greedy struct{}

// NewGreedy returns a Greedy strategy. It is stateless and deterministic.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Name() string {
	return "greedy"
}

func (g *Greedy) ChooseMove(state *game.GameState) game.Move {
	moves := mustMoves(state)
	n := state.Board.Size()

	if winners := winningMoves(state, moves); len(winners) > 0 {
		return pickBest(winners, n)
	}

	if decisive := opponentWinningCells(state); len(decisive) > 0 {
		if blockers := blockingMoves(state, moves, decisive); len(blockers) > 0 {
			return pickBest(blockers, n)
		}
	}

	// Score ties resolve to the earlier move in enumeration order.
	best, bestScore := moves[0], g.score(state, moves[0])
	for _, m := range moves[1:] {
		if s := g.score(state, m); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best
}

func (g *Greedy) score(state *game.GameState, m game.Move) float64 {
	n := state.Board.Size()
	after := applyToCopy(state.Board, m)
	oppInv := state.Inventory(m.Player.Opponent())

	s := greedyCenterWeight * centrality(m.To, n)
	s += greedySizeWeight * float64(m.Size)
	s -= greedyExposureWeight * exposure(after, m.Player, oppInv)
	return s
}
