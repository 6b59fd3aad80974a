package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"super6/agent"
	"super6/config"
	"super6/engine"
	"super6/experiments/metrics"
	"super6/game"
	"super6/searcher"
	"super6/solver"
	"super6/stats"
)

// Result is the outcome of a match up between the solved agent and an opponent.
type Result struct {
	Agents    []metrics.AgentConfig
	Games     []metrics.GameRecord
	Summaries []metrics.SummaryRecord // One per starting seat
}

func newOpponent(cfg config.ExperimentConfig, solution *solver.Solution, rng *rand.Rand) (agent.Agent, metrics.AgentConfig) {
	rules := solution.Rules()
	record := metrics.AgentConfig{ID: 2}
	var a agent.Agent
	switch cfg.Opponent {
	case "threshold":
		a = agent.NewThresholdAgent(cfg.Threshold)
		record.Threshold = cfg.Threshold
	case "lookahead":
		a = agent.NewLookAheadAgent(rules, game.EvaluateLidPressure(rules))
	case "random":
		a = agent.NewRandomAgent(rng)
	case "sampling":
		a = agent.NewSamplingAgent(agent.SolvedScores(solution), cfg.Temperature, rng)
		record.Temperature = cfg.Temperature
	case "mcts":
		mcts := searcher.NewMCTS(rules, 1,
			searcher.WithEpisodes(cfg.Episodes),
			searcher.WithEvaluationFn(game.EvaluateLidPressure(rules)),
			searcher.WithSeed(rng.Uint64()))
		a = agent.NewSearchAgent(mcts)
		record.Episodes = cfg.Episodes
	default:
		panic(fmt.Sprintf("unknown opponent %q", cfg.Opponent))
	}
	record.Name = a.Name()
	return a, record
}

// Run plays cfg.Games games between the solved agent and the configured
// opponent, alternating the starting player, and compares the win rate from
// each seat with the solved win probability. Records are written under
// outputDir unless it is empty.
func Run(solution *solver.Solution, cfg config.ExperimentConfig, outputDir string) (Result, error) {
	rules := solution.Rules()
	if cfg.Sticks < 1 || cfg.Sticks > rules.MaxSticks() {
		return Result{}, fmt.Errorf("starting hand of %d sticks does not fit %d", cfg.Sticks, rules.MaxSticks())
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	solved := agent.NewSolvedAgent(solution)
	opponent, opponentConfig := newOpponent(cfg, solution, rng)
	configs := []metrics.AgentConfig{{ID: 1, Name: solved.Name()}, opponentConfig}
	agents := [2]agent.Agent{solved, opponent}
	start := game.State{Lid: 0, Mine: cfg.Sticks, Theirs: cfg.Sticks}

	log.Info().Msgf("starting %d games of %s against %s from %s...", cfg.Games, solved.Name(), opponent.Name(), start)

	records := make([]metrics.GameRecord, 0, cfg.Games)
	var rolls stats.Statistic
	for i := 0; i < cfg.Games; i++ {
		first := i % 2
		e := engine.NewLocalEngine(rules, agents, start, first, rng)
		_, gameMetric := e.Run()

		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		rolls.Push(float64(gameMetric.Rolls))

		if (i+1)%1000 == 0 {
			log.Debug().Msgf("completed game %d of %d", i+1, cfg.Games)
		}
	}
	log.Info().Msgf("completed %d games with %.1f rolls on average (stdev %.1f)", cfg.Games, rolls.Mean(), rolls.Stdev())

	// Moving second, the solved agent wins whatever finished games the
	// opponent does not win under solved play.
	atStart := solution.Query(start)
	summaries := []metrics.SummaryRecord{
		summarize(records, 0, atStart.Value(), cfg.Confidence),
		summarize(records, 1, atStart.Done()-atStart.Value(), cfg.Confidence),
	}
	for _, s := range summaries {
		log.Info().Msgf("%s moving %s won %d of %d games: %.3f in [%.3f, %.3f], solved %.3f",
			solved.Name(), seat(s.StartingPlayer), s.Wins, s.Games, s.WinRate, s.Lower, s.Upper, s.Predicted)
		if s.Games > 0 && s.Upper < s.Predicted {
			log.Warn().Msgf("%s moving %s won less often than solved play guarantees", solved.Name(), seat(s.StartingPlayer))
		}
	}

	result := Result{Agents: configs, Games: records, Summaries: summaries}
	if outputDir == "" {
		return result, nil
	}
	if err := write(outputDir, result); err != nil {
		return result, err
	}
	return result, nil
}

func seat(startingPlayer int) string {
	if startingPlayer == 0 {
		return "first"
	}
	return "second"
}

// summarize aggregates the games in which the first agent sat at the given
// starting seat.
func summarize(records []metrics.GameRecord, startingPlayer int, predicted, confidence float64) metrics.SummaryRecord {
	games := lo.Filter(records, func(r metrics.GameRecord, _ int) bool {
		return r.StartingPlayer == startingPlayer
	})
	wins := lo.CountBy(games, func(r metrics.GameRecord) bool {
		return r.Winner == 0
	})
	abandoned := lo.CountBy(games, func(r metrics.GameRecord) bool {
		return !r.Finished()
	})
	interval := stats.WinRateInterval(wins, len(games), confidence)

	summary := metrics.SummaryRecord{
		StartingPlayer: startingPlayer,
		Games:          len(games),
		Wins:           wins,
		Abandoned:      abandoned,
		WinRate:        interval.Rate,
		Lower:          interval.Lower,
		Upper:          interval.Upper,
		Predicted:      predicted,
	}
	if len(games) > 0 {
		summary.Agent1 = games[0].Agent1
		summary.Agent2 = games[0].Agent2
	}
	return summary
}

func write(outputDir string, result Result) error {
	writer, err := metrics.NewWriter(outputDir, "experiment")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(result.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteSummaries(result.Summaries); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msgf("stored summaries in %s", writer.Dir())
	return nil
}
