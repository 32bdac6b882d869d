// Package experiments runs batches and tournaments of independent Gobblet
// games and aggregates the outcomes.
package experiments

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"gobblet/engine"
	"gobblet/experiments/metrics"
	"gobblet/game"
	"gobblet/strategy"
)

// BatchConfig describes one matchup run repeatedly.
type BatchConfig struct {
	Light     string
	Dark      string
	Games     int
	Workers   int
	BoardSize int
	MaxMoves  int
	// Seed is the base seed; game i derives its strategy seeds from Seed and
	// i, so a batch replays identically regardless of worker count.
	Seed uint64
}

// BatchResult aggregates one batch. Games are ordered by game index so runs
// with the same config and seed produce identical results.
type BatchResult struct {
	Config     BatchConfig
	LightWins  int
	DarkWins   int
	Draws      int
	TotalMoves int
	Duration   time.Duration
	Games      []metrics.GameRecord
	Moves      []metrics.MoveRecord
}

// LightWinRate returns the fraction of games Light won.
func (r BatchResult) LightWinRate() float64 { return rate(r.LightWins, r.Config.Games) }

// DarkWinRate returns the fraction of games Dark won.
func (r BatchResult) DarkWinRate() float64 { return rate(r.DarkWins, r.Config.Games) }

// DrawRate returns the fraction of games drawn.
func (r BatchResult) DrawRate() float64 { return rate(r.Draws, r.Config.Games) }

// AverageMoves returns the mean game length in moves.
func (r BatchResult) AverageMoves() float64 {
	if r.Config.Games == 0 {
		return 0
	}
	return float64(r.TotalMoves) / float64(r.Config.Games)
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

type outcome struct {
	index  int
	result engine.Result
	seed   uint64
	err    error
}

// RunBatch plays cfg.Games independent games on a pool of cfg.Workers
// goroutines. Each game owns its own GameState and strategies; the only
// shared resource is the outcome channel.
func RunBatch(cfg BatchConfig) (BatchResult, error) {
	if cfg.Games < 1 {
		return BatchResult{}, fmt.Errorf("batch needs at least one game, got %d", cfg.Games)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = game.DefaultBoardSize
	}
	if cfg.MaxMoves == 0 {
		cfg.MaxMoves = game.DefaultMaxMoves
	}
	if !strategy.Known(cfg.Light) || !strategy.Known(cfg.Dark) {
		return BatchResult{}, fmt.Errorf("unknown matchup %s vs %s (strategies: %v)", cfg.Light, cfg.Dark, strategy.Names())
	}

	log.Info().
		Str("light", cfg.Light).
		Str("dark", cfg.Dark).
		Int("games", cfg.Games).
		Int("workers", cfg.Workers).
		Msg("starting batch")

	start := time.Now()
	jobs := make(chan int)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := cfg.Seed + uint64(i)*2
				result, err := runGame(cfg, seed)
				outcomes <- outcome{index: i, result: result, seed: seed, err: err}
			}
		}()
	}

	go func() {
		for i := 0; i < cfg.Games; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	collected := make([]outcome, 0, cfg.Games)
	var firstErr error
	for o := range outcomes {
		if o.err != nil && firstErr == nil {
			firstErr = o.err
		}
		collected = append(collected, o)
	}
	if firstErr != nil {
		return BatchResult{}, firstErr
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })

	batch := BatchResult{Config: cfg}
	for _, o := range collected {
		id := o.index + 1
		res := o.result
		switch {
		case res.Draw:
			batch.Draws++
		case *res.Winner == game.Light:
			batch.LightWins++
		default:
			batch.DarkWins++
		}
		batch.TotalMoves += res.MoveCount
		batch.Games = append(batch.Games, metrics.GameRecord{
			ID:       id,
			GameID:   res.GameID,
			Light:    res.LightStrategy,
			Dark:     res.DarkStrategy,
			Winner:   res.WinnerName(),
			Moves:    res.MoveCount,
			Seed:     o.seed,
			Duration: res.Duration,
		})
		for _, rec := range res.Moves {
			batch.Moves = append(batch.Moves, metrics.MoveRecord{Game: id, Record: rec})
		}
	}
	batch.Duration = time.Since(start)

	log.Info().
		Str("light", cfg.Light).
		Str("dark", cfg.Dark).
		Int("light_wins", batch.LightWins).
		Int("dark_wins", batch.DarkWins).
		Int("draws", batch.Draws).
		Dur("duration", batch.Duration).
		Msg("completed batch")

	return batch, nil
}

func runGame(cfg BatchConfig, seed uint64) (engine.Result, error) {
	light, err := strategy.New(cfg.Light, seed)
	if err != nil {
		return engine.Result{}, err
	}
	dark, err := strategy.New(cfg.Dark, seed+1)
	if err != nil {
		return engine.Result{}, err
	}
	e, err := engine.New(light, dark,
		engine.WithBoardSize(cfg.BoardSize),
		engine.WithMaxMoves(cfg.MaxMoves))
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}
