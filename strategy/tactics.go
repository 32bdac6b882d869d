package strategy

import (
	"math"

	"gobblet/game"
)

// applyToCopy simulates move on a copy of board. The move must already be
// known legal.
func applyToCopy(board *game.Board, move game.Move) *game.Board {
	b := board.Copy()
	switch move.Kind {
	case game.PlaceMove:
		p := game.Piece{ID: move.PieceID, Color: move.Player, Size: move.Size}
		if _, err := b.Place(p, move.To); err != nil {
			panic(err)
		}
	case game.RelocateMove:
		if _, _, err := b.Relocate(move.From, move.To); err != nil {
			panic(err)
		}
	}
	return b
}

// wins reports whether player owns a line after move is applied to a copy of
// board. A relocation that uncovers a completed line counts.
func wins(board *game.Board, move game.Move, player game.Color) bool {
	return applyToCopy(board, move).CheckWin(player)
}

// winningMoves filters the moves that win immediately for the active player.
func winningMoves(state *game.GameState, moves []game.Move) []game.Move {
	var out []game.Move
	for _, m := range moves {
		if wins(state.Board, m, state.CurrentPlayer) {
			out = append(out, m)
		}
	}
	return out
}

// opponentWinningCells returns the decisive cells: destinations of every move
// the opponent could win with if it were their turn right now.
func opponentWinningCells(state *game.GameState) map[game.Position]bool {
	opp := state.CurrentPlayer.Opponent()
	cells := make(map[game.Position]bool)
	for _, m := range state.Board.LegalMoves(opp, state.Inventory(opp)) {
		if wins(state.Board, m, opp) {
			cells[m.To] = true
		}
	}
	return cells
}

// blockingMoves filters the moves that occupy or cover a decisive cell
// without handing the opponent a win by uncovering one of their lines.
func blockingMoves(state *game.GameState, moves []game.Move, decisive map[game.Position]bool) []game.Move {
	opp := state.CurrentPlayer.Opponent()
	var out []game.Move
	for _, m := range moves {
		if !decisive[m.To] {
			continue
		}
		if wins(state.Board, m, opp) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// better reports whether a beats b under the shared tie-break: Place before
// Relocate, then smaller destination index, then larger piece.
func better(a, b game.Move, boardSize int) bool {
	if a.Kind != b.Kind {
		return a.Kind == game.PlaceMove
	}
	ai, bi := a.To.Index(boardSize), b.To.Index(boardSize)
	if ai != bi {
		return ai < bi
	}
	return a.Size > b.Size
}

// pickBest resolves a non-empty candidate set with the shared tie-break.
func pickBest(moves []game.Move, boardSize int) game.Move {
	best := moves[0]
	for _, m := range moves[1:] {
		if better(m, best, boardSize) {
			best = m
		}
	}
	return best
}

// centrality is 1 at the board's center and falls off linearly to 0 at the
// corners.
func centrality(pos game.Position, boardSize int) float64 {
	center := float64(boardSize-1) / 2
	dist := math.Abs(float64(pos.Row)-center) + math.Abs(float64(pos.Col)-center)
	return 1 - dist/(2*center)
}

// isCorner reports whether pos is one of the four corner cells.
func isCorner(pos game.Position, boardSize int) bool {
	edge := boardSize - 1
	return (pos.Row == 0 || pos.Row == edge) && (pos.Col == 0 || pos.Col == edge)
}

// linesThrough returns every full win line (row, column, diagonals) that
// contains pos.
func linesThrough(pos game.Position, boardSize int) [][]game.Position {
	var lines [][]game.Position
	row := make([]game.Position, boardSize)
	col := make([]game.Position, boardSize)
	for j := 0; j < boardSize; j++ {
		row[j] = game.Position{Row: pos.Row, Col: j}
		col[j] = game.Position{Row: j, Col: pos.Col}
	}
	lines = append(lines, row, col)
	if pos.Row == pos.Col {
		diag := make([]game.Position, boardSize)
		for j := 0; j < boardSize; j++ {
			diag[j] = game.Position{Row: j, Col: j}
		}
		lines = append(lines, diag)
	}
	if pos.Row+pos.Col == boardSize-1 {
		anti := make([]game.Position, boardSize)
		for j := 0; j < boardSize; j++ {
			anti[j] = game.Position{Row: j, Col: boardSize - 1 - j}
		}
		lines = append(lines, anti)
	}
	return lines
}

// exposure sums the sizes of player's visible pieces that the opponent could
// cover on their next turn, on the board as it stands.
func exposure(board *game.Board, player game.Color, oppInv game.Inventory) float64 {
	opp := player.Opponent()
	n := board.Size()

	// The largest piece the opponent can bring to bear, from inventory or by
	// relocating a visible piece.
	maxThreat := game.Size(0)
	for _, s := range game.Sizes {
		if oppInv[s] > 0 && s > maxThreat {
			maxThreat = s
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if top, occupied := board.TopPiece(game.Position{Row: r, Col: c}); occupied && top.Color == opp && top.Size > maxThreat {
				maxThreat = top.Size
			}
		}
	}

	total := 0.0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			top, occupied := board.TopPiece(game.Position{Row: r, Col: c})
			if occupied && top.Color == player && top.Size < maxThreat {
				total += float64(top.Size)
			}
		}
	}
	return total
}
