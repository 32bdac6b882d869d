package game

// Inventory counts a player's unplaced pieces by size. Counts only ever
// decrease: a placed piece moves between cells but never returns off-board.
type Inventory map[Size]int

// NewInventory returns the standard starting inventory of three pieces per
// size.
func NewInventory() Inventory {
	inv := make(Inventory, len(Sizes))
	for _, s := range Sizes {
		inv[s] = PiecesPerSize
	}
	return inv
}

// Copy returns an independent copy of the inventory.
func (inv Inventory) Copy() Inventory {
	out := make(Inventory, len(inv))
	for s, n := range inv {
		out[s] = n
	}
	return out
}

// Total returns how many pieces remain off-board.
func (inv Inventory) Total() int {
	total := 0
	for _, n := range inv {
		total += n
	}
	return total
}
