package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"super6/game"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := parseFlags(nil)
		require.NoError(t, err)
		require.Equal(t, 16, opts.config.Solver.MaxSticks)
		require.Equal(t, "", opts.experiment)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "super6.yaml")
		require.NoError(t, os.WriteFile(path, []byte("solver:\n  max_rounds: 300\n  workers: 2\n"), 0644))

		opts, err := parseFlags([]string{"-config", path, "-workers", "3", "-pits", "3", "-debug", "-experiment", "play"})
		require.NoError(t, err)
		require.Equal(t, 300, opts.config.Solver.MaxRounds)
		require.Equal(t, 3, opts.config.Solver.Workers)
		require.Equal(t, 3, opts.config.Solver.MaxPits)
		require.Equal(t, "debug", opts.config.LogLevel)
		require.Equal(t, "play", opts.experiment)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := parseFlags([]string{"-sticks", "0"})
		require.Error(t, err)

		_, err = parseFlags([]string{"-experiment", "tournament"})
		require.Error(t, err)

		_, err = parseFlags([]string{"-query", "4/1"})
		require.Error(t, err)

		_, err = parseFlags([]string{"-unknown"})
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("small board report", func(t *testing.T) {
		opts, err := parseFlags([]string{"-sticks", "1", "-pits", "1", "-query", "1/0/1,1/4/1"})
		require.NoError(t, err)
		require.Equal(t, []game.State{{Lid: 0, Mine: 1, Theirs: 1}, {Lid: 4, Mine: 1, Theirs: 1}}, opts.queries)
		opts.config.Report.Lid = 1

		var out bytes.Buffer
		require.NoError(t, run(opts, &out))
		lines := strings.Split(out.String(), "\n")
		require.Equal(t, "1/1/1, 0.500000, 0.500000, stop", lines[0])
		require.Contains(t, out.String(), "1/0/1, 1.000000, 0.000000, continue (completion 1.000000", "Queries on the board are printed")
		require.NotContains(t, out.String(), "1/4/1")
	})

	t.Run("csv output and experiment", func(t *testing.T) {
		dir := t.TempDir()
		opts, err := parseFlags([]string{"-sticks", "3", "-pits", "2", "-out", dir, "-experiment", "play", "-games", "6"})
		require.NoError(t, err)
		opts.config.Experiment.Sticks = 2

		var out bytes.Buffer
		require.NoError(t, run(opts, &out))

		files, err := filepath.Glob(filepath.Join(dir, "solve", "*", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 2)
		files, err = filepath.Glob(filepath.Join(dir, "experiment", "*", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 3)
	})
}
