package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"super6/meta"
)

const (
	MaxRoundsLimit = 1_000_000
	MaxSticksLimit = 64
	MaxPitsLimit   = 9
)

// Opponents an experiment can pit the solved agent against.
var Opponents = []string{"threshold", "lookahead", "random", "sampling", "mcts"}

type Config struct {
	Solver     SolverConfig     `yaml:"solver"`
	Report     ReportConfig     `yaml:"report"`
	Experiment ExperimentConfig `yaml:"experiment"`
	LogLevel   string           `yaml:"log_level"`
}

type SolverConfig struct {
	MaxRounds int     `yaml:"max_rounds"`
	MaxSticks int     `yaml:"max_sticks"`
	MaxPits   int     `yaml:"max_pits"`
	Tolerance float64 `yaml:"tolerance"`
	Workers   int     `yaml:"workers"`
}

type ReportConfig struct {
	Lid       int    `yaml:"lid"`
	MaxTotal  int    `yaml:"max_total"`
	OutputDir string `yaml:"output_dir"` // CSV output is skipped when empty
}

type ExperimentConfig struct {
	Games       int     `yaml:"games"`
	Sticks      int     `yaml:"sticks"` // Starting hand of both players
	Seed        uint64  `yaml:"seed"`
	Opponent    string  `yaml:"opponent"`
	Threshold   int     `yaml:"threshold"`   // Lid threshold of the threshold opponent
	Temperature float64 `yaml:"temperature"` // Temperature of the sampling opponent
	Episodes    int     `yaml:"episodes"`    // Search episodes per decision of the mcts opponent
	Confidence  float64 `yaml:"confidence"`  // Percent
}

func Default() Config {
	return Config{
		Solver: SolverConfig{
			MaxRounds: meta.MAX_ROUNDS,
			MaxSticks: meta.MAX_STICKS,
			MaxPits:   meta.MAX_PITS,
			Tolerance: meta.TOLERANCE,
			Workers:   meta.WORKERS,
		},
		Report: ReportConfig{
			Lid:      meta.REPORT_LID,
			MaxTotal: meta.REPORT_MAX_TOTAL,
		},
		Experiment: ExperimentConfig{
			Games:       meta.GAMES,
			Sticks:      meta.START_STICKS,
			Seed:        1,
			Opponent:    "threshold",
			Threshold:   meta.MAX_PITS,
			Temperature: 1,
			Episodes:    meta.EPISODES,
			Confidence:  meta.CONFIDENCE,
		},
		LogLevel: "info",
	}
}

// Load overlays the YAML file at path on the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	s := c.Solver
	if s.MaxRounds < 1 || s.MaxRounds > MaxRoundsLimit {
		errs = append(errs, fmt.Errorf("max_rounds %d outside [1, %d]", s.MaxRounds, MaxRoundsLimit))
	}
	if s.MaxSticks < 1 || s.MaxSticks > MaxSticksLimit {
		errs = append(errs, fmt.Errorf("max_sticks %d outside [1, %d]", s.MaxSticks, MaxSticksLimit))
	}
	if s.MaxPits < 1 || s.MaxPits > MaxPitsLimit {
		errs = append(errs, fmt.Errorf("max_pits %d outside [1, %d]", s.MaxPits, MaxPitsLimit))
	}
	if s.Tolerance < 0 || s.Tolerance >= 1 {
		errs = append(errs, fmt.Errorf("tolerance %g outside [0, 1)", s.Tolerance))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d below 1", s.Workers))
	}

	r := c.Report
	if r.Lid < 0 {
		errs = append(errs, fmt.Errorf("report lid %d below 0", r.Lid))
	}
	if r.MaxTotal < 2 {
		errs = append(errs, fmt.Errorf("report max_total %d below 2", r.MaxTotal))
	}

	e := c.Experiment
	if e.Games < 0 {
		errs = append(errs, fmt.Errorf("games %d below 0", e.Games))
	}
	if e.Sticks < 1 {
		errs = append(errs, fmt.Errorf("starting sticks %d below 1", e.Sticks))
	}
	if !lo.Contains(Opponents, e.Opponent) {
		errs = append(errs, fmt.Errorf("unknown opponent %q, want one of %v", e.Opponent, Opponents))
	}
	if e.Temperature <= 0 {
		errs = append(errs, fmt.Errorf("temperature %g must be positive", e.Temperature))
	}
	if e.Episodes < 1 {
		errs = append(errs, fmt.Errorf("episodes %d below 1", e.Episodes))
	}
	if e.Confidence <= 0 || e.Confidence >= 100 {
		errs = append(errs, fmt.Errorf("confidence %g outside (0, 100)", e.Confidence))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}
