package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gobblet/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, game.DefaultBoardSize, cfg.BoardSize)
	require.Equal(t, game.DefaultMaxMoves, cfg.MaxMoves)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
games: 50
workers: 8
seed: 7
light_strategy: greedy
dark_strategy: defensive
output_dir: /tmp/runs
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 50, cfg.Games)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, uint64(7), cfg.Seed)
	require.Equal(t, "greedy", cfg.LightStrategy)
	require.Equal(t, "defensive", cfg.DarkStrategy)
	require.Equal(t, "/tmp/runs", cfg.OutputDir)
	require.Equal(t, game.DefaultBoardSize, cfg.BoardSize, "unset fields keep their defaults")
}

func TestLoadRejectsBadBoardSize(t *testing.T) {
	path := writeConfig(t, "board_size: 2\n")
	_, err := Load(path)
	var cfgErr *game.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	path := writeConfig(t, "light_strategy: psychic\n")
	_, err := Load(path)
	var cfgErr *game.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, err.Error(), "psychic")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "games: [not a number\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
