package game

import (
	"fmt"
	"strings"
)

// Position addresses a board cell, 0-indexed from the top-left corner.
type Position struct {
	Row int
	Col int
}

// Index returns the row-major index of the position on an n×n board.
func (p Position) Index(n int) int {
	return p.Row*n + p.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is an ordered stack of pieces; the top piece is last. Only the top
// piece is visible: it alone counts toward win lines and it alone may move.
type Cell struct {
	pieces []Piece
}

// Top returns the visible piece of the cell, if any.
func (c *Cell) Top() (Piece, bool) {
	if len(c.pieces) == 0 {
		return Piece{}, false
	}
	return c.pieces[len(c.pieces)-1], true
}

// Empty reports whether no piece occupies the cell.
func (c *Cell) Empty() bool {
	return len(c.pieces) == 0
}

// Height returns how many pieces are stacked on the cell.
func (c *Cell) Height() int {
	return len(c.pieces)
}

func (c *Cell) push(p Piece) {
	c.pieces = append(c.pieces, p)
}

func (c *Cell) pop() Piece {
	p := c.pieces[len(c.pieces)-1]
	c.pieces = c.pieces[:len(c.pieces)-1]
	return p
}

const (
	// MinBoardSize is the smallest playable board. Anything below cannot hold
	// a meaningful win line.
	MinBoardSize = 3
	// DefaultBoardSize is the standard Gobblet board.
	DefaultBoardSize = 4
)

// Board is the n×n grid of cells. It is a plain mutable structure with
// validated transitions and no turn knowledge of its own; GameState owns one
// board exclusively.
type Board struct {
	size  int
	cells []Cell // row-major
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("board size %d is below the minimum of %d", size, MinBoardSize),
		}
	}
	return &Board{size: size, cells: make([]Cell, size*size)}, nil
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// Contains reports whether pos lies on the board.
func (b *Board) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

func (b *Board) at(pos Position) *Cell {
	return &b.cells[pos.Index(b.size)]
}

// TopPiece returns the visible piece at pos. Covered pieces are never
// returned.
func (b *Board) TopPiece(pos Position) (Piece, bool) {
	if !b.Contains(pos) {
		return Piece{}, false
	}
	return b.at(pos).Top()
}

// CanPlace reports whether piece may land on pos: the cell is empty or its
// top piece is strictly smaller. Only size matters; a piece may cover its
// own color as well as the opponent's.
func (b *Board) CanPlace(p Piece, pos Position) bool {
	if !b.Contains(pos) {
		return false
	}
	top, occupied := b.at(pos).Top()
	if !occupied {
		return true
	}
	return p.Size > top.Size
}

// Place pushes piece onto the cell at pos, returning the piece it covered,
// if any. The covering rule is checked at insertion time only; pieces already
// buried in the stack are never re-validated.
func (b *Board) Place(p Piece, pos Position) (*Piece, error) {
	if !b.Contains(pos) {
		return nil, illegalMove("position %v is off the board", pos)
	}
	cell := b.at(pos)
	var covered *Piece
	if top, occupied := cell.Top(); occupied {
		if p.Size <= top.Size {
			return nil, illegalMove("%v %v piece cannot cover %v %v piece at %v",
				p.Color, p.Size, top.Color, top.Size, pos)
		}
		c := top
		covered = &c
	}
	cell.push(p)
	return covered, nil
}

// CanMove reports whether mover owns the visible piece at from. A covered
// piece may not move.
func (b *Board) CanMove(from Position, mover Color) bool {
	top, occupied := b.TopPiece(from)
	return occupied && top.Color == mover
}

// Relocate pops the top piece off from and pushes it onto to, returning the
// moved piece and the piece it covered, if any. Moving a piece onto its own
// cell is forbidden. The board is left untouched on failure.
func (b *Board) Relocate(from, to Position) (Piece, *Piece, error) {
	if !b.Contains(from) {
		return Piece{}, nil, illegalMove("source %v is off the board", from)
	}
	if from == to {
		return Piece{}, nil, illegalMove("piece at %v cannot move onto its own cell", from)
	}
	top, occupied := b.at(from).Top()
	if !occupied {
		return Piece{}, nil, illegalMove("no piece to move at %v", from)
	}
	if !b.Contains(to) {
		return Piece{}, nil, illegalMove("destination %v is off the board", to)
	}
	if dst, occupied := b.at(to).Top(); occupied && top.Size <= dst.Size {
		return Piece{}, nil, illegalMove("%v %v piece at %v cannot cover %v %v piece at %v",
			top.Color, top.Size, from, dst.Color, dst.Size, to)
	}
	moved := b.at(from).pop()
	covered, err := b.Place(moved, to)
	if err != nil {
		// Unreachable: destination was validated above.
		b.at(from).push(moved)
		return Piece{}, nil, err
	}
	return moved, covered, nil
}

// CheckWin reports whether player owns the top piece of every cell in some
// full row, column or diagonal. Covered pieces never count toward a line.
func (b *Board) CheckWin(player Color) bool {
	n := b.size
	for i := 0; i < n; i++ {
		if b.ownsLine(player, func(j int) Position { return Position{Row: i, Col: j} }) {
			return true
		}
		if b.ownsLine(player, func(j int) Position { return Position{Row: j, Col: i} }) {
			return true
		}
	}
	if b.ownsLine(player, func(j int) Position { return Position{Row: j, Col: j} }) {
		return true
	}
	return b.ownsLine(player, func(j int) Position { return Position{Row: j, Col: n - 1 - j} })
}

func (b *Board) ownsLine(player Color, pos func(int) Position) bool {
	for j := 0; j < b.size; j++ {
		top, occupied := b.TopPiece(pos(j))
		if !occupied || top.Color != player {
			return false
		}
	}
	return true
}

// Winner returns the player owning a full line, if any. When a relocation
// uncovers a line for each player at once the mover's win takes precedence,
// which GameState resolves by checking the mover first.
func (b *Board) Winner() (Color, bool) {
	if b.CheckWin(Light) {
		return Light, true
	}
	if b.CheckWin(Dark) {
		return Dark, true
	}
	return 0, false
}

// LegalMoves enumerates every legal move for player given their off-board
// inventory. The order is deterministic across calls: placements first
// (destination cells row-major, sizes ascending), then relocations (source
// cells row-major, destination cells row-major), so strategies and tests get
// reproducible enumeration.
func (b *Board) LegalMoves(player Color, inv Inventory) []Move {
	var moves []Move
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			to := Position{Row: r, Col: c}
			for _, s := range Sizes {
				remaining := inv[s]
				if remaining <= 0 {
					continue
				}
				p := Piece{ID: pieceID(player, s, remaining), Color: player, Size: s}
				if b.CanPlace(p, to) {
					moves = append(moves, Move{
						Kind:    PlaceMove,
						Player:  player,
						PieceID: p.ID,
						Size:    s,
						To:      to,
					})
				}
			}
		}
	}
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			from := Position{Row: r, Col: c}
			top, occupied := b.TopPiece(from)
			if !occupied || top.Color != player {
				continue
			}
			for tr := 0; tr < b.size; tr++ {
				for tc := 0; tc < b.size; tc++ {
					to := Position{Row: tr, Col: tc}
					if to == from {
						continue
					}
					if b.CanPlace(top, to) {
						moves = append(moves, Move{
							Kind:    RelocateMove,
							Player:  player,
							PieceID: top.ID,
							Size:    top.Size,
							From:    from,
							To:      to,
						})
					}
				}
			}
		}
	}
	return moves
}

// Copy returns a deep copy of the board, including buried pieces.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	for i := range b.cells {
		cells[i] = Cell{pieces: append([]Piece(nil), b.cells[i].pieces...)}
	}
	return &Board{size: b.size, cells: cells}
}

// String renders the visible tops, e.g. "L2" for a light medium piece.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteString(" | ")
			}
			top, occupied := b.TopPiece(Position{Row: r, Col: c})
			if !occupied {
				sb.WriteString("--")
				continue
			}
			mark := byte('L')
			if top.Color == Dark {
				mark = 'D'
			}
			sb.WriteByte(mark)
			sb.WriteByte(byte('0' + int(top.Size)))
		}
	}
	return sb.String()
}
