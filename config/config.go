// Package config loads simulation settings from YAML with sane defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gobblet/game"
	"gobblet/strategy"
)

// Config describes a simulation run.
type Config struct {
	BoardSize       int    `yaml:"board_size"`
	MaxMoves        int    `yaml:"max_moves"`
	Games           int    `yaml:"games"`
	Workers         int    `yaml:"workers"`
	Seed            uint64 `yaml:"seed"`
	LightStrategy   string `yaml:"light_strategy"`
	DarkStrategy    string `yaml:"dark_strategy"`
	Tournament      bool   `yaml:"tournament"`
	GamesPerMatchup int    `yaml:"games_per_matchup"`
	OutputDir       string `yaml:"output_dir"`
}

// Default returns the standard simulation settings.
func Default() Config {
	return Config{
		BoardSize:       game.DefaultBoardSize,
		MaxMoves:        game.DefaultMaxMoves,
		Games:           10,
		Workers:         4,
		Seed:            1,
		LightStrategy:   "random",
		DarkStrategy:    "random",
		GamesPerMatchup: 10,
		OutputDir:       "results",
	}
}

// Load reads a YAML config from path on top of the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot honor.
func (c Config) Validate() error {
	if c.BoardSize < game.MinBoardSize {
		return &game.ConfigurationError{
			Reason: fmt.Sprintf("board size %d is below the minimum of %d", c.BoardSize, game.MinBoardSize),
		}
	}
	if c.MaxMoves < 1 {
		return &game.ConfigurationError{Reason: "max_moves must be at least 1"}
	}
	if c.Games < 1 {
		return &game.ConfigurationError{Reason: "games must be at least 1"}
	}
	if c.GamesPerMatchup < 1 {
		return &game.ConfigurationError{Reason: "games_per_matchup must be at least 1"}
	}
	if !strategy.Known(c.LightStrategy) {
		return &game.ConfigurationError{
			Reason: fmt.Sprintf("unknown light strategy %q (want one of %v)", c.LightStrategy, strategy.Names()),
		}
	}
	if !strategy.Known(c.DarkStrategy) {
		return &game.ConfigurationError{
			Reason: fmt.Sprintf("unknown dark strategy %q (want one of %v)", c.DarkStrategy, strategy.Names()),
		}
	}
	return nil
}
