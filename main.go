package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gobblet/config"
	"gobblet/experiments"
	"gobblet/experiments/metrics"
	"gobblet/strategy"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML simulation config")
	games := flag.Int("games", 0, "number of games (overrides config)")
	light := flag.String("light", "", "light strategy (overrides config)")
	dark := flag.String("dark", "", "dark strategy (overrides config)")
	workers := flag.Int("workers", 0, "concurrent games (overrides config)")
	seed := flag.Uint64("seed", 0, "base random seed (overrides config)")
	tournament := flag.Bool("tournament", false, "run every strategy pairing instead of one matchup")
	verbose := flag.Bool("verbose", false, "per-game debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *light != "" {
		cfg.LightStrategy = *light
	}
	if *dark != "" {
		cfg.DarkStrategy = *dark
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *tournament {
		cfg.Tournament = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.Tournament {
		runTournament(cfg)
		return
	}
	runBatch(cfg)
}

func runBatch(cfg config.Config) {
	batch, err := experiments.RunBatch(experiments.BatchConfig{
		Light:     cfg.LightStrategy,
		Dark:      cfg.DarkStrategy,
		Games:     cfg.Games,
		Workers:   cfg.Workers,
		BoardSize: cfg.BoardSize,
		MaxMoves:  cfg.MaxMoves,
		Seed:      cfg.Seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	writeRecords(cfg, experiments.MatchupKey(cfg.LightStrategy, cfg.DarkStrategy), batch)

	fmt.Printf("%s vs %s over %d games:\n", cfg.LightStrategy, cfg.DarkStrategy, cfg.Games)
	fmt.Printf("  light wins: %d (%.1f%%)\n", batch.LightWins, 100*batch.LightWinRate())
	fmt.Printf("  dark wins:  %d (%.1f%%)\n", batch.DarkWins, 100*batch.DarkWinRate())
	fmt.Printf("  draws:      %d (%.1f%%)\n", batch.Draws, 100*batch.DrawRate())
	fmt.Printf("  avg moves:  %.1f\n", batch.AverageMoves())
	fmt.Printf("  duration:   %s\n", batch.Duration)
}

func runTournament(cfg config.Config) {
	result, err := experiments.RunTournament(experiments.TournamentConfig{
		Strategies:      strategy.Names(),
		GamesPerMatchup: cfg.GamesPerMatchup,
		Workers:         cfg.Workers,
		BoardSize:       cfg.BoardSize,
		MaxMoves:        cfg.MaxMoves,
		Seed:            cfg.Seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	for key, batch := range result.Matchups {
		writeRecords(cfg, key, batch)
	}

	fmt.Printf("tournament standings (%d games per matchup):\n", cfg.GamesPerMatchup)
	for i, s := range result.Standings {
		fmt.Printf("  %d. %-10s %.1f%% win rate (%d/%d games, %d draws)\n",
			i+1, s.Strategy, 100*s.WinRate, s.Wins, s.Games, s.Draws)
	}
	fmt.Printf("total time: %s\n", result.Duration)
}

func writeRecords(cfg config.Config, name string, batch experiments.BatchResult) {
	if cfg.OutputDir == "" {
		return
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create records writer")
	}
	if err := writer.WriteGameRecords(batch.Games); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(batch.Moves); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored records")
}
