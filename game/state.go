package game

// DefaultMaxMoves caps game length so that strategies which shuffle pieces
// around without ever completing a line still terminate. The game is a draw
// once the ceiling is reached.
const DefaultMaxMoves = 200

// GameState owns the board, both inventories and the turn sequence for one
// game. Turn order is strict alternation; there is no pass move. A GameState
// is exclusively owned by the single logical thread running its game and is
// not safe for concurrent use.
type GameState struct {
	Board         *Board
	CurrentPlayer Color
	MoveCount     int
	MaxMoves      int

	inventories map[Color]Inventory
	winner      *Color
	terminal    bool
}

// StateOption customizes game construction.
type StateOption func(*GameState)

// WithMaxMoves overrides the move-count ceiling.
func WithMaxMoves(n int) StateOption {
	return func(gs *GameState) {
		gs.MaxMoves = n
	}
}

// NewGameState starts a game on an empty boardSize×boardSize board with full
// inventories, Light to move.
func NewGameState(boardSize int, opts ...StateOption) (*GameState, error) {
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		Board:         board,
		CurrentPlayer: Light,
		MaxMoves:      DefaultMaxMoves,
		inventories: map[Color]Inventory{
			Light: NewInventory(),
			Dark:  NewInventory(),
		},
	}
	for _, opt := range opts {
		opt(gs)
	}
	if gs.MaxMoves < 1 {
		return nil, &ConfigurationError{Reason: "move ceiling must be at least 1"}
	}
	return gs, nil
}

// NewGame starts a standard game on the default 4×4 board.
func NewGame() *GameState {
	gs, err := NewGameState(DefaultBoardSize)
	if err != nil {
		panic(err) // the default size is always valid
	}
	return gs
}

// LegalMoves enumerates the active player's moves in deterministic order.
func (gs *GameState) LegalMoves() []Move {
	return gs.Board.LegalMoves(gs.CurrentPlayer, gs.inventories[gs.CurrentPlayer])
}

// Inventory returns a copy of a player's unplaced piece counts.
func (gs *GameState) Inventory(c Color) Inventory {
	return gs.inventories[c].Copy()
}

// TopPiece returns the visible piece at pos.
func (gs *GameState) TopPiece(pos Position) (Piece, bool) {
	return gs.Board.TopPiece(pos)
}

// IsTerminal reports whether the game has ended with a winner or a draw.
func (gs *GameState) IsTerminal() bool {
	return gs.terminal
}

// Winner returns the winning player, if the game has one.
func (gs *GameState) Winner() (Color, bool) {
	if gs.winner == nil {
		return 0, false
	}
	return *gs.winner, true
}

// Draw reports whether the game ended with no winner.
func (gs *GameState) Draw() bool {
	return gs.terminal && gs.winner == nil
}

// Copy returns an independent deep copy of the state, including the board
// and inventories. Strategies simulate candidate moves on copies so the live
// game is never mutated by lookahead.
func (gs *GameState) Copy() *GameState {
	inventories := make(map[Color]Inventory, len(gs.inventories))
	for c, inv := range gs.inventories {
		inventories[c] = inv.Copy()
	}
	var winner *Color
	if gs.winner != nil {
		w := *gs.winner
		winner = &w
	}
	return &GameState{
		Board:         gs.Board.Copy(),
		CurrentPlayer: gs.CurrentPlayer,
		MoveCount:     gs.MoveCount,
		MaxMoves:      gs.MaxMoves,
		inventories:   inventories,
		winner:        winner,
		terminal:      gs.terminal,
	}
}

// Apply validates and executes a move for the active player, returning the
// flat record of what happened. Every rejected move surfaces as an
// IllegalMoveError and leaves the state untouched.
//
// After the move the mover's win is checked first; the opponent is checked
// second because a relocation can uncover a line the opponent had already
// completed underneath. If neither wins, the game is a draw once the move
// ceiling is reached or the next player has no legal move — passing is not
// part of Gobblet.
func (gs *GameState) Apply(move Move) (Record, error) {
	if gs.terminal {
		return Record{}, illegalMove("game is over")
	}
	if move.Player != gs.CurrentPlayer {
		return Record{}, illegalMove("%v moved out of turn", move.Player)
	}

	rec := Record{Player: move.Player, Kind: move.Kind, To: move.To}

	switch move.Kind {
	case PlaceMove:
		remaining := gs.inventories[move.Player][move.Size]
		if remaining <= 0 {
			return Record{}, illegalMove("%v has no %v piece left to place", move.Player, move.Size)
		}
		piece := Piece{ID: pieceID(move.Player, move.Size, remaining), Color: move.Player, Size: move.Size}
		if move.PieceID != piece.ID {
			return Record{}, illegalMove("piece %d is not %v's next unplaced %v piece", move.PieceID, move.Player, move.Size)
		}
		covered, err := gs.Board.Place(piece, move.To)
		if err != nil {
			return Record{}, err
		}
		gs.inventories[move.Player][move.Size]--
		rec.PieceID = piece.ID
		rec.Size = piece.Size
		if covered != nil {
			id := covered.ID
			rec.CapturedPieceID = &id
		}

	case RelocateMove:
		if !gs.Board.CanMove(move.From, move.Player) {
			return Record{}, illegalMove("%v has no movable piece at %v", move.Player, move.From)
		}
		top, _ := gs.Board.TopPiece(move.From)
		if move.PieceID != top.ID {
			return Record{}, illegalMove("piece %d is not the visible piece at %v", move.PieceID, move.From)
		}
		moved, covered, err := gs.Board.Relocate(move.From, move.To)
		if err != nil {
			return Record{}, err
		}
		rec.PieceID = moved.ID
		rec.Size = moved.Size
		from := move.From
		rec.From = &from
		if covered != nil {
			id := covered.ID
			rec.CapturedPieceID = &id
		}

	default:
		return Record{}, illegalMove("unknown move kind %d", move.Kind)
	}

	gs.MoveCount++
	rec.MoveNumber = gs.MoveCount

	switch {
	case gs.Board.CheckWin(move.Player):
		gs.endWith(move.Player)
	case gs.Board.CheckWin(move.Player.Opponent()):
		gs.endWith(move.Player.Opponent())
	case gs.MoveCount >= gs.MaxMoves:
		gs.terminal = true
	default:
		next := move.Player.Opponent()
		if len(gs.Board.LegalMoves(next, gs.inventories[next])) == 0 {
			gs.terminal = true
		} else {
			gs.CurrentPlayer = next
		}
	}

	return rec, nil
}

func (gs *GameState) endWith(winner Color) {
	w := winner
	gs.winner = &w
	gs.terminal = true
}
