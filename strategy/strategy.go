// Package strategy implements the move-selection policies that play Gobblet
// games against each other.
package strategy

import (
	"fmt"

	"gobblet/game"
)

// Strategy picks one move for the active player. Implementations must only
// return moves present in state.LegalMoves(). Callers must not invoke
// ChooseMove on a state without legal moves; doing so is a programming error,
// not an illegal move, and panics.
type Strategy interface {
	Name() string
	ChooseMove(state *game.GameState) game.Move
}

// New builds a strategy by name. The seed feeds any randomness the strategy
// uses, so identical seeds replay identical games.
func New(name string, seed uint64) (Strategy, error) {
	switch name {
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return NewGreedy(), nil
	case "defensive":
		return NewDefensive(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, Names())
	}
}

// Names lists the registered strategy names.
func Names() []string {
	return []string{"random", "greedy", "defensive"}
}

// Known reports whether name is a registered strategy.
func Known(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

func mustMoves(state *game.GameState) []game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("strategy invoked with no legal moves")
	}
	return moves
}
