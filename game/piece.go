package game

// Size of a Gobblet piece. Larger pieces cover smaller ones.
type Size int

const (
	Small Size = iota + 1
	Medium
	Large
)

// Sizes lists every piece size in ascending order, for deterministic iteration.
var Sizes = [...]Size{Small, Medium, Large}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// Color identifies one of the two players. Light always moves first.
type Color int

const (
	Light Color = iota
	Dark
)

// Opponent returns the other player.
func (c Color) Opponent() Color {
	if c == Light {
		return Dark
	}
	return Light
}

func (c Color) String() string {
	if c == Light {
		return "light"
	}
	return "dark"
}

// PiecesPerSize is how many pieces of each size a player starts with off-board.
const PiecesPerSize = 3

// Piece is a pure value object: identity, owner and size never change after
// creation. Two pieces are the same piece iff their IDs match.
type Piece struct {
	ID    int
	Color Color
	Size  Size
}

// pieceID derives the identifier of the next unplaced piece of a size from
// how many pieces of that size remain off-board. Light owns IDs 0-8 and Dark
// 9-17, grouped three per size, so move enumeration and Apply always agree on
// which piece a placement introduces.
func pieceID(c Color, s Size, remaining int) int {
	base := 0
	if c == Dark {
		base = len(Sizes) * PiecesPerSize
	}
	return base + int(s-1)*PiecesPerSize + (PiecesPerSize - remaining)
}
