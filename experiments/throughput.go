package experiments

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"super6/experiments/metrics"
	"super6/game"
	"super6/solver"
)

// RunThroughputExperiment solves the same board once per worker count and
// reports how the sweep time scales. Records are written under outputDir
// unless it is empty.
func RunThroughputExperiment(rules game.Rules, workers []int, outputDir string) ([]solver.SolveMetrics, error) {
	log.Info().Msgf("starting throughput experiment over %v workers...", workers)

	results := make([]solver.SolveMetrics, 0, len(workers))
	for _, w := range workers {
		sol, err := solver.NewSolver(rules, solver.WithWorkers(w), solver.WithMetrics()).Solve()
		if err != nil {
			return nil, fmt.Errorf("solve with %d workers: %w", w, err)
		}
		m := sol.Metrics()
		results = append(results, m)
		log.Info().Msgf("%d workers: %d rounds in %s", m.Workers, m.Rounds, m.Duration)
	}

	if outputDir == "" {
		return results, nil
	}

	writer, err := metrics.NewWriter(outputDir, "throughput")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	header := []string{"workers", "rounds", "duration_ns", "rounds_per_second", "converged"}
	rows := lo.Map(results, func(m solver.SolveMetrics, _ int) []string {
		perSecond := 0.0
		if m.Duration > 0 {
			perSecond = float64(m.Rounds) / m.Duration.Seconds()
		}
		return []string{
			strconv.Itoa(m.Workers),
			strconv.FormatInt(m.Rounds, 10),
			strconv.FormatInt(m.Duration.Nanoseconds(), 10),
			strconv.FormatFloat(perSecond, 'f', 1, 64),
			strconv.FormatBool(m.Converged),
		}
	})
	if err := writer.WriteCSV("throughput.csv", header, rows); err != nil {
		return nil, fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Msgf("stored throughput records in %s", writer.Dir())
	return results, nil
}
