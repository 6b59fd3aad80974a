package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"super6/config"
	"super6/experiments"
	"super6/experiments/metrics"
	"super6/game"
	"super6/report"
	"super6/solver"
)

type options struct {
	config     config.Config
	experiment string       // "", "play" or "throughput"
	queries    []game.State // Extra states to print after the report
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("super6", flag.ContinueOnError)
	path := fs.String("config", "", "YAML config file")
	rounds := fs.Int("rounds", 0, "Round budget of the value iteration")
	sticks := fs.Int("sticks", 0, "Largest hand a player can hold")
	pits := fs.Int("pits", 0, "Number of pits in the lid")
	tolerance := fs.Float64("tolerance", 0, "Max change at which iteration stops, 0 runs the full budget")
	workers := fs.Int("workers", 0, "Goroutines sharing a sweep")
	out := fs.String("out", "", "Directory for CSV output")
	experiment := fs.String("experiment", "", "Experiment to run after solving: play or throughput")
	games := fs.Int("games", 0, "Games per experiment")
	seed := fs.Uint64("seed", 0, "Seed of the simulated dice")
	opponent := fs.String("opponent", "", "Opponent of the solved agent: "+strings.Join(config.Opponents, ", "))
	query := fs.String("query", "", "Comma separated mine/lid/theirs states to print, e.g. 1/4/1,3/2/3")
	debug := fs.Bool("debug", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return options{}, err
	}

	// Flags given on the command line override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Solver.MaxRounds = *rounds
		case "sticks":
			cfg.Solver.MaxSticks = *sticks
		case "pits":
			cfg.Solver.MaxPits = *pits
		case "tolerance":
			cfg.Solver.Tolerance = *tolerance
		case "workers":
			cfg.Solver.Workers = *workers
		case "out":
			cfg.Report.OutputDir = *out
		case "games":
			cfg.Experiment.Games = *games
		case "seed":
			cfg.Experiment.Seed = *seed
		case "opponent":
			cfg.Experiment.Opponent = *opponent
		case "debug":
			if *debug {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return options{}, fmt.Errorf("invalid flags: %w", err)
	}

	switch *experiment {
	case "", "play", "throughput":
	default:
		return options{}, fmt.Errorf("unknown experiment %q", *experiment)
	}
	var queries []game.State
	if *query != "" {
		for _, text := range strings.Split(*query, ",") {
			s, err := game.ParseState(text)
			if err != nil {
				return options{}, fmt.Errorf("invalid query: %w", err)
			}
			queries = append(queries, s)
		}
	}
	return options{config: cfg, experiment: *experiment, queries: queries}, nil
}

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(opts.config.LogLevel)

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("super6 failed")
	}
}

func run(opts options, out io.Writer) error {
	cfg := opts.config
	rules := game.NewRules(cfg.Solver.MaxSticks, cfg.Solver.MaxPits)
	if err := rules.Validate(); err != nil {
		return err
	}

	if opts.experiment == "throughput" {
		_, err := experiments.RunThroughputExperiment(rules, []int{1, 2, 4, 8}, cfg.Report.OutputDir)
		return err
	}

	solution, err := solver.NewSolver(rules,
		solver.WithMaxRounds(cfg.Solver.MaxRounds),
		solver.WithTolerance(cfg.Solver.Tolerance),
		solver.WithWorkers(cfg.Solver.Workers),
	).Solve()
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	rows := report.Rows(solution, cfg.Report.Lid, cfg.Report.MaxTotal)
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out)
	for _, row := range report.Specific(solution) {
		fmt.Fprintf(out, "%s (completion %.6f)\n", row, row.Done())
	}

	space := solution.Tables().Space()
	for _, s := range opts.queries {
		if !space.Contains(s) {
			log.Warn().Msgf("query %s is off the board", s)
			continue
		}
		row := report.Row{Result: solution.Query(s)}
		fmt.Fprintf(out, "%s (completion %.6f, truncation bound %.2g)\n", row, row.Done(), solution.TruncationBound(s))
	}

	for _, m := range report.Check(solution) {
		log.Warn().Msgf("reference mismatch at %s", m)
	}

	if cfg.Report.OutputDir != "" {
		w, err := metrics.NewWriter(cfg.Report.OutputDir, "solve")
		if err != nil {
			return err
		}
		if err := report.WriteReport(w, rows); err != nil {
			return err
		}
		if err := report.WriteStrategy(w, solution); err != nil {
			return err
		}
		log.Info().Msgf("stored report in %s", w.Dir())
	}

	if opts.experiment == "play" {
		_, err := experiments.Run(solution, cfg.Experiment, cfg.Report.OutputDir)
		return err
	}
	return nil
}
