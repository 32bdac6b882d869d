package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gobblet/game"
	"gobblet/strategy"
)

func TestRunPlaysToCompletion(t *testing.T) {
	e, err := New(strategy.NewGreedy(), strategy.NewDefensive())
	require.NoError(t, err)

	result, err := e.Run()
	require.NoError(t, err)

	require.NotEmpty(t, result.GameID)
	require.Equal(t, "greedy", result.LightStrategy)
	require.Equal(t, "defensive", result.DarkStrategy)
	require.NotEqual(t, result.Draw, result.Winner != nil, "exactly one of winner and draw")
	require.Len(t, result.Moves, result.MoveCount)
	require.Greater(t, result.MoveCount, 0)
	require.LessOrEqual(t, result.MoveCount, game.DefaultMaxMoves)
	require.False(t, result.EndTime.Before(result.StartTime))
}

func TestRunTerminatesForEveryPairing(t *testing.T) {
	pairings := []struct {
		name        string
		light, dark strategy.Strategy
	}{
		{"random_vs_random", strategy.NewRandom(1), strategy.NewRandom(2)},
		{"greedy_vs_defensive", strategy.NewGreedy(), strategy.NewDefensive()},
		{"random_vs_greedy", strategy.NewRandom(3), strategy.NewGreedy()},
		{"defensive_vs_random", strategy.NewDefensive(), strategy.NewRandom(4)},
	}
	for _, p := range pairings {
		t.Run(p.name, func(t *testing.T) {
			e, err := New(p.light, p.dark)
			require.NoError(t, err)
			result, err := e.Run()
			require.NoError(t, err)
			require.True(t, result.Draw || result.Winner != nil)
		})
	}
}

func TestRunIsDeterministicForEqualSeeds(t *testing.T) {
	play := func() Result {
		e, err := New(strategy.NewRandom(11), strategy.NewRandom(12))
		require.NoError(t, err)
		result, err := e.Run()
		require.NoError(t, err)
		return result
	}

	a, b := play(), play()
	require.Equal(t, a.WinnerName(), b.WinnerName())
	require.Equal(t, a.MoveCount, b.MoveCount)
	require.Equal(t, a.Moves, b.Moves)
	require.NotEqual(t, a.GameID, b.GameID, "every game gets a fresh identifier")
}

func TestRunHonorsMoveCeiling(t *testing.T) {
	e, err := New(strategy.NewRandom(5), strategy.NewRandom(6), WithMaxMoves(3))
	require.NoError(t, err)

	result, err := e.Run()
	require.NoError(t, err)
	require.LessOrEqual(t, result.MoveCount, 3)
}

func TestNewRejectsBadBoard(t *testing.T) {
	_, err := New(strategy.NewRandom(1), strategy.NewRandom(2), WithBoardSize(2))
	var cfgErr *game.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

// TestManyRandomGames hammers the rules with random play. Every game must end
// cleanly in a win or a draw without a single illegal move.
func TestManyRandomGames(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long random playout in short mode")
	}
	for seed := uint64(0); seed < 1000; seed++ {
		e, err := New(strategy.NewRandom(seed*2), strategy.NewRandom(seed*2+1))
		require.NoError(t, err)
		result, err := e.Run()
		require.NoError(t, err, "seed %d", seed)
		require.True(t, result.Draw || result.Winner != nil)
	}
}
