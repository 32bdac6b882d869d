package experiments

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// TournamentConfig runs every ordered pairing of the given strategies, so
// each strategy plays both colors against each opponent and itself.
type TournamentConfig struct {
	Strategies      []string
	GamesPerMatchup int
	Workers         int
	BoardSize       int
	MaxMoves        int
	Seed            uint64
}

// Standing is one strategy's aggregate over a tournament.
type Standing struct {
	Strategy    string
	Games       int
	Wins        int
	WinsAsLight int
	WinsAsDark  int
	Draws       int
	WinRate     float64
}

// TournamentResult holds per-matchup batches plus the ranked standings.
type TournamentResult struct {
	Matchups  map[string]BatchResult
	Standings []Standing
	Duration  time.Duration
}

// MatchupKey names a matchup the way records are filed, light first.
func MatchupKey(light, dark string) string {
	return fmt.Sprintf("%s_vs_%s", light, dark)
}

// RunTournament plays every ordered pairing and ranks strategies by win
// rate. Matchups get disjoint seed ranges so no two games share seeds.
func RunTournament(cfg TournamentConfig) (TournamentResult, error) {
	if len(cfg.Strategies) == 0 {
		return TournamentResult{}, fmt.Errorf("tournament needs at least one strategy")
	}
	if cfg.GamesPerMatchup < 1 {
		return TournamentResult{}, fmt.Errorf("tournament needs at least one game per matchup, got %d", cfg.GamesPerMatchup)
	}

	log.Info().
		Strs("strategies", cfg.Strategies).
		Int("games_per_matchup", cfg.GamesPerMatchup).
		Msg("starting tournament")

	start := time.Now()
	result := TournamentResult{Matchups: make(map[string]BatchResult)}
	stats := make(map[string]*Standing, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		stats[name] = &Standing{Strategy: name}
	}

	matchup := 0
	for _, light := range cfg.Strategies {
		for _, dark := range cfg.Strategies {
			batch, err := RunBatch(BatchConfig{
				Light:     light,
				Dark:      dark,
				Games:     cfg.GamesPerMatchup,
				Workers:   cfg.Workers,
				BoardSize: cfg.BoardSize,
				MaxMoves:  cfg.MaxMoves,
				Seed:      cfg.Seed + uint64(matchup*cfg.GamesPerMatchup)*2,
			})
			if err != nil {
				return TournamentResult{}, fmt.Errorf("matchup %s: %w", MatchupKey(light, dark), err)
			}
			result.Matchups[MatchupKey(light, dark)] = batch
			matchup++

			stats[light].Games += batch.Config.Games
			stats[light].WinsAsLight += batch.LightWins
			stats[light].Wins += batch.LightWins
			stats[light].Draws += batch.Draws
			stats[dark].Games += batch.Config.Games
			stats[dark].WinsAsDark += batch.DarkWins
			stats[dark].Wins += batch.DarkWins
			stats[dark].Draws += batch.Draws
		}
	}

	for _, s := range stats {
		s.WinRate = rate(s.Wins, s.Games)
		result.Standings = append(result.Standings, *s)
	}
	sort.Slice(result.Standings, func(i, j int) bool {
		a, b := result.Standings[i], result.Standings[j]
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return a.Strategy < b.Strategy
	})
	result.Duration = time.Since(start)

	log.Info().
		Dur("duration", result.Duration).
		Str("leader", result.Standings[0].Strategy).
		Msg("completed tournament")

	return result, nil
}
