package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsTinySize(t *testing.T) {
	_, err := NewBoard(2)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestCanPlaceCoveringRule(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	pos := Position{Row: 1, Col: 2}
	require.True(t, board.CanPlace(Piece{ID: 0, Color: Light, Size: Small}, pos),
		"any piece may land on an empty cell")

	_, err = board.Place(Piece{ID: 1, Color: Light, Size: Medium}, pos)
	require.NoError(t, err)

	require.False(t, board.CanPlace(Piece{ID: 9, Color: Dark, Size: Small}, pos),
		"smaller piece must not cover a larger one")
	require.False(t, board.CanPlace(Piece{ID: 12, Color: Dark, Size: Medium}, pos),
		"equal size must not cover")
	require.True(t, board.CanPlace(Piece{ID: 15, Color: Dark, Size: Large}, pos),
		"larger opponent piece covers")
	require.True(t, board.CanPlace(Piece{ID: 6, Color: Light, Size: Large}, pos),
		"covering one's own piece is legal; only size matters")
}

func TestPlaceReturnsCoveredPiece(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	pos := Position{Row: 0, Col: 0}
	small := Piece{ID: 9, Color: Dark, Size: Small}
	_, err = board.Place(small, pos)
	require.NoError(t, err)

	covered, err := board.Place(Piece{ID: 3, Color: Light, Size: Medium}, pos)
	require.NoError(t, err)
	require.NotNil(t, covered)
	require.Equal(t, small, *covered)

	top, occupied := board.TopPiece(pos)
	require.True(t, occupied)
	require.Equal(t, 3, top.ID, "covered piece is never returned by TopPiece")
	require.Equal(t, 2, board.at(pos).Height())
}

func TestPlaceRejectsEqualOrLarger(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	pos := Position{Row: 2, Col: 2}
	_, err = board.Place(Piece{ID: 3, Color: Light, Size: Medium}, pos)
	require.NoError(t, err)

	_, err = board.Place(Piece{ID: 12, Color: Dark, Size: Medium}, pos)
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)

	top, _ := board.TopPiece(pos)
	require.Equal(t, 3, top.ID, "failed place leaves the board untouched")
	require.Equal(t, 1, board.at(pos).Height())
}

func TestRelocateRules(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	from := Position{Row: 0, Col: 0}
	_, _, err = board.Relocate(from, Position{Row: 1, Col: 1})
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal, "empty source is illegal")

	small := Piece{ID: 0, Color: Light, Size: Small}
	_, err = board.Place(small, from)
	require.NoError(t, err)

	_, _, err = board.Relocate(from, from)
	require.ErrorAs(t, err, &illegal, "moving a piece onto its own cell is forbidden")

	// Destination top of equal size rejects the move and leaves both cells
	// untouched.
	blocked := Position{Row: 2, Col: 0}
	_, err = board.Place(Piece{ID: 10, Color: Dark, Size: Small}, blocked)
	require.NoError(t, err)
	_, _, err = board.Relocate(from, blocked)
	require.ErrorAs(t, err, &illegal)
	top, occupied := board.TopPiece(from)
	require.True(t, occupied)
	require.Equal(t, small, top)

	moved, covered, err := board.Relocate(from, Position{Row: 3, Col: 3})
	require.NoError(t, err)
	require.Equal(t, small, moved)
	require.Nil(t, covered)
	require.True(t, board.at(from).Empty())
	top, occupied = board.TopPiece(Position{Row: 3, Col: 3})
	require.True(t, occupied)
	require.Equal(t, small, top)
}

func TestCanMoveOnlyOwnTopPiece(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	pos := Position{Row: 1, Col: 1}
	_, err = board.Place(Piece{ID: 0, Color: Light, Size: Small}, pos)
	require.NoError(t, err)
	require.True(t, board.CanMove(pos, Light))
	require.False(t, board.CanMove(pos, Dark))

	// Covering the piece transfers control of the cell.
	_, err = board.Place(Piece{ID: 12, Color: Dark, Size: Medium}, pos)
	require.NoError(t, err)
	require.False(t, board.CanMove(pos, Light), "a covered piece may not move")
	require.True(t, board.CanMove(pos, Dark))
}

func TestCheckWinLines(t *testing.T) {
	lines := map[string]func(i int) Position{
		"row":           func(i int) Position { return Position{Row: 2, Col: i} },
		"column":        func(i int) Position { return Position{Row: i, Col: 1} },
		"diagonal":      func(i int) Position { return Position{Row: i, Col: i} },
		"anti-diagonal": func(i int) Position { return Position{Row: i, Col: 3 - i} },
	}
	for name, line := range lines {
		t.Run(name, func(t *testing.T) {
			board, err := NewBoard(4)
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				_, err := board.Place(Piece{ID: i, Color: Light, Size: Small}, line(i))
				require.NoError(t, err)
			}
			require.True(t, board.CheckWin(Light))
			require.False(t, board.CheckWin(Dark))
		})
	}
}

func TestCheckWinUsesOnlyVisibleTops(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	// Light fills row 0, then Dark covers one cell. The buried light piece
	// must not count toward the line.
	for i := 0; i < 4; i++ {
		_, err := board.Place(Piece{ID: i, Color: Light, Size: Small}, Position{Row: 0, Col: i})
		require.NoError(t, err)
	}
	require.True(t, board.CheckWin(Light))

	_, err = board.Place(Piece{ID: 15, Color: Dark, Size: Large}, Position{Row: 0, Col: 3})
	require.NoError(t, err)
	require.False(t, board.CheckWin(Light))
	require.False(t, board.CheckWin(Dark))
}

func TestLegalMovesOpeningScenario(t *testing.T) {
	gs, err := NewGameState(4)
	require.NoError(t, err)

	_, err = gs.Apply(Move{Kind: PlaceMove, Player: Light, PieceID: 0, Size: Small, To: Position{Row: 0, Col: 0}})
	require.NoError(t, err)

	moves := gs.LegalMoves()
	require.Len(t, moves, 47, "15 empty cells x 3 sizes + medium/large covering the small")

	places, relocations := 0, 0
	coveringMoves := 0
	for _, m := range moves {
		require.Equal(t, Dark, m.Player)
		switch m.Kind {
		case PlaceMove:
			places++
		case RelocateMove:
			relocations++
		}
		if (m.To == Position{Row: 0, Col: 0}) {
			coveringMoves++
			require.Greater(t, m.Size, Small, "only larger pieces may cover the small at (0,0)")
		}
	}
	require.Equal(t, 47, places)
	require.Zero(t, relocations, "dark has no pieces on the board yet")
	require.Equal(t, 2, coveringMoves)
}

func TestLegalMovesMidGameExactSet(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	darkSmall := Piece{ID: 9, Color: Dark, Size: Small}
	_, err = board.Place(darkSmall, Position{Row: 0, Col: 0})
	require.NoError(t, err)
	_, err = board.Place(Piece{ID: 3, Color: Light, Size: Medium}, Position{Row: 1, Col: 1})
	require.NoError(t, err)

	// Dark has only one large left off-board.
	inv := Inventory{Small: 0, Medium: 0, Large: 1}
	largeID := pieceID(Dark, Large, 1)

	var expected []Move
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// The large covers everything, including dark's own small.
			expected = append(expected, Move{
				Kind: PlaceMove, Player: Dark, PieceID: largeID, Size: Large,
				To: Position{Row: r, Col: c},
			})
		}
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			to := Position{Row: r, Col: c}
			// The small at (0,0) reaches every empty cell only.
			if (to == Position{Row: 0, Col: 0}) || (to == Position{Row: 1, Col: 1}) {
				continue
			}
			expected = append(expected, Move{
				Kind: RelocateMove, Player: Dark, PieceID: darkSmall.ID, Size: Small,
				From: Position{Row: 0, Col: 0}, To: to,
			})
		}
	}

	moves := board.LegalMoves(Dark, inv)
	require.ElementsMatch(t, expected, moves)
}

func TestLegalMovesDeterministicOrder(t *testing.T) {
	gs, err := NewGameState(4)
	require.NoError(t, err)
	playScripted(t, gs, 6)

	first := gs.LegalMoves()
	second := gs.LegalMoves()
	require.Equal(t, first, second, "repeated enumeration must be identical, order included")
}

func TestBoardCopyIsIndependent(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)
	pos := Position{Row: 0, Col: 0}
	_, err = board.Place(Piece{ID: 0, Color: Light, Size: Small}, pos)
	require.NoError(t, err)

	clone := board.Copy()
	_, err = clone.Place(Piece{ID: 15, Color: Dark, Size: Large}, pos)
	require.NoError(t, err)

	top, _ := board.TopPiece(pos)
	require.Equal(t, 0, top.ID, "mutating the copy must not touch the original")
	require.Equal(t, 1, board.at(pos).Height())
	require.Equal(t, 2, clone.at(pos).Height())
}
