package game

import "fmt"

// MoveKind distinguishes the two ways a piece reaches a cell.
type MoveKind int

const (
	// PlaceMove introduces a new piece from the player's inventory.
	PlaceMove MoveKind = iota
	// RelocateMove moves an uncovered piece already on the board.
	RelocateMove
)

func (k MoveKind) String() string {
	if k == PlaceMove {
		return "place"
	}
	return "relocate"
}

// Move is an immutable record of intent, not board state. From is meaningful
// only for relocations.
type Move struct {
	Kind    MoveKind
	Player  Color
	PieceID int
	Size    Size
	From    Position
	To      Position
}

func (m Move) String() string {
	if m.Kind == PlaceMove {
		return fmt.Sprintf("%v places %v piece %d at %v", m.Player, m.Size, m.PieceID, m.To)
	}
	return fmt.Sprintf("%v moves %v piece %d from %v to %v", m.Player, m.Size, m.PieceID, m.From, m.To)
}

// Record is the flat form of an applied move, the schema persistence and
// analysis code consume. From is nil for placements; CapturedPieceID is set
// when the move covered an occupant.
type Record struct {
	MoveNumber      int
	Player          Color
	Kind            MoveKind
	PieceID         int
	Size            Size
	From            *Position
	To              Position
	CapturedPieceID *int
}
