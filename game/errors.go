package game

import "fmt"

// IllegalMoveError reports a move that violates board, inventory or turn
// rules. It is always recoverable: the caller re-queries LegalMoves and picks
// again. The engine never corrects an illegal move silently.
type IllegalMoveError struct {
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return "illegal move: " + e.Reason
}

// ConfigurationError reports an invalid game construction, such as a board
// too small to hold a win line. It is fatal: there is no state to recover.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func illegalMove(format string, args ...any) error {
	return &IllegalMoveError{Reason: fmt.Sprintf(format, args...)}
}
