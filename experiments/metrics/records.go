// Package metrics holds the flat record types batch simulations produce and
// a CSV writer for persisting them.
package metrics

import (
	"time"

	"gobblet/game"
)

// GameRecord is one row of game_records.csv.
type GameRecord struct {
	ID       int // 1-based index within the run
	GameID   string
	Light    string
	Dark     string
	Winner   string // "light", "dark" or "draw"
	Moves    int
	Seed     uint64
	Duration time.Duration
}

// MoveRecord is one row of move_records.csv: a game index plus the flat
// applied-move record the core engine produces.
type MoveRecord struct {
	Game int // GameRecord.ID
	game.Record
}
