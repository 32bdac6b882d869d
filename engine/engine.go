// Package engine runs single Gobblet games to completion by alternating
// strategy calls against a GameState.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gobblet/game"
	"gobblet/strategy"
)

// Result summarizes one finished game.
type Result struct {
	GameID        string
	LightStrategy string
	DarkStrategy  string
	Winner        *game.Color // nil on a draw
	Draw          bool
	MoveCount     int
	Moves         []game.Record
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// WinnerName returns "light", "dark" or "draw" for reporting.
func (r Result) WinnerName() string {
	if r.Winner == nil {
		return "draw"
	}
	return r.Winner.String()
}

// Engine drives one game. Each engine owns its GameState exclusively;
// independent engines may run concurrently without coordination.
type Engine struct {
	ID         string
	State      *game.GameState
	Strategies map[game.Color]strategy.Strategy
}

type options struct {
	boardSize int
	maxMoves  int
}

// Option customizes engine construction.
type Option func(*options)

// WithBoardSize overrides the default 4×4 board.
func WithBoardSize(n int) Option {
	return func(o *options) {
		o.boardSize = n
	}
}

// WithMaxMoves overrides the default move-count ceiling.
func WithMaxMoves(n int) Option {
	return func(o *options) {
		o.maxMoves = n
	}
}

// New creates an engine for one game between light and dark.
func New(light, dark strategy.Strategy, opts ...Option) (*Engine, error) {
	o := options{boardSize: game.DefaultBoardSize, maxMoves: game.DefaultMaxMoves}
	for _, opt := range opts {
		opt(&o)
	}
	state, err := game.NewGameState(o.boardSize, game.WithMaxMoves(o.maxMoves))
	if err != nil {
		return nil, err
	}
	return &Engine{
		ID:    uuid.NewString(),
		State: state,
		Strategies: map[game.Color]strategy.Strategy{
			game.Light: light,
			game.Dark:  dark,
		},
	}, nil
}

// Run plays the game until a winner or a draw. A strategy returning an
// illegal move is a bug in that strategy and surfaces as an error; the engine
// never corrects it.
func (e *Engine) Run() (Result, error) {
	result := Result{
		GameID:        e.ID,
		LightStrategy: e.Strategies[game.Light].Name(),
		DarkStrategy:  e.Strategies[game.Dark].Name(),
		StartTime:     time.Now(),
	}

	log.Debug().
		Str("game", e.ID).
		Str("light", result.LightStrategy).
		Str("dark", result.DarkStrategy).
		Msg("game started")

	for !e.State.IsTerminal() {
		mover := e.State.CurrentPlayer
		move := e.Strategies[mover].ChooseMove(e.State)
		rec, err := e.State.Apply(move)
		if err != nil {
			return Result{}, fmt.Errorf("strategy %q played %v: %w", e.Strategies[mover].Name(), move, err)
		}
		result.Moves = append(result.Moves, rec)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.MoveCount = e.State.MoveCount
	if w, ok := e.State.Winner(); ok {
		winner := w
		result.Winner = &winner
	} else {
		result.Draw = true
	}

	log.Debug().
		Str("game", e.ID).
		Str("winner", result.WinnerName()).
		Int("moves", result.MoveCount).
		Dur("duration", result.Duration).
		Msg("game finished")

	return result, nil
}
