package strategy

import "gobblet/game"

// Defensive weights. Neutralizing an opponent threat dominates everything
// else; attacking is only the immediate-win short-circuit.
const (
	defensiveThreatWeight   = 10.0
	defensivePressureWeight = 4.0
	defensiveCoverWeight    = 3.0
	defensiveCornerWeight   = 2.0
	defensiveCenterWeight   = 1.5
	defensiveSizeWeight     = 0.5
)

// Defensive takes an immediate win when one exists, then plays for board
// control: occupying decisive and pressured cells, corners and the center,
// and covering the opponent's exposed pieces.
type Defensive struct{}

// NewDefensive returns a Defensive strategy. It is stateless and
// deterministic.
func NewDefensive() *Defensive {
	return &Defensive{}
}

func (d *Defensive) Name() string {
	return "defensive"
}

func (d *Defensive) ChooseMove(state *game.GameState) game.Move {
	moves := mustMoves(state)
	n := state.Board.Size()

	if winners := winningMoves(state, moves); len(winners) > 0 {
		return pickBest(winners, n)
	}

	decisive := opponentWinningCells(state)

	// Score ties resolve to the earlier move in enumeration order.
	best, bestScore := moves[0], d.score(state, moves[0], decisive)
	for _, m := range moves[1:] {
		if s := d.score(state, m, decisive); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best
}

func (d *Defensive) score(state *game.GameState, m game.Move, decisive map[game.Position]bool) float64 {
	n := state.Board.Size()
	opp := m.Player.Opponent()

	// A move that uncovers a completed opponent line loses on the spot.
	if wins(state.Board, m, opp) {
		return -1e9
	}

	s := 0.0
	if decisive[m.To] {
		s += defensiveThreatWeight
	}
	s += defensivePressureWeight * float64(d.opponentPressure(state.Board, m.To, opp, n))
	if top, occupied := state.Board.TopPiece(m.To); occupied && top.Color == opp {
		s += defensiveCoverWeight
	}
	if isCorner(m.To, n) {
		s += defensiveCornerWeight
	}
	s += defensiveCenterWeight * centrality(m.To, n)
	s += defensiveSizeWeight * float64(m.Size)
	return s
}

// opponentPressure counts the lines through pos where the opponent already
// owns all but one of the visible tops.
func (d *Defensive) opponentPressure(board *game.Board, pos game.Position, opp game.Color, n int) int {
	pressured := 0
	for _, line := range linesThrough(pos, n) {
		owned := 0
		for _, cell := range line {
			if top, occupied := board.TopPiece(cell); occupied && top.Color == opp {
				owned++
			}
		}
		if owned == n-1 {
			pressured++
		}
	}
	return pressured
}
