package solver

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"super6/game"
	"super6/meta"
)

// Entries may drift this far outside [0, 1] through rounding.
const slack = 1e-9

type Option func(s *Solver)

// RoundStats summarizes one completed sweep.
type RoundStats struct {
	Round         int
	Delta         float64 // Max entry-wise change across both tables
	MinCompletion float64 // Smallest completion probability of an undecided state
}

// Observer is called after every sweep with the tables that round produced.
// The tables must not be retained past the call.
type Observer func(stats RoundStats, tables *Tables)

type Solver struct {
	rules     game.Rules
	space     game.Space
	maxRounds int
	tolerance float64
	workers   int
	observer  Observer
	metrics   MetricsCollector
}

// WithMaxRounds bounds the number of sweeps.
func WithMaxRounds(rounds int) Option {
	return func(s *Solver) {
		if rounds > 0 {
			s.maxRounds = rounds
		}
	}
}

// WithTolerance stops iterating once no entry moves by more than tolerance.
// A tolerance of 0 runs the full round budget.
func WithTolerance(tolerance float64) Option {
	return func(s *Solver) {
		if tolerance >= 0 {
			s.tolerance = tolerance
		}
	}
}

// WithWorkers splits each sweep across goroutines by the mover's stick count.
func WithWorkers(workers int) Option {
	return func(s *Solver) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(s *Solver) {
		s.observer = observer
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = NewMetricsCollector()
	}
}

func NewSolver(rules game.Rules, options ...Option) *Solver {
	s := &Solver{ // Default values
		rules:     rules,
		space:     game.NewSpace(rules),
		maxRounds: meta.MAX_ROUNDS,
		tolerance: meta.TOLERANCE,
		workers:   meta.WORKERS,
		metrics:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// transition is the precomputed roll structure of one undecided state.
type transition struct {
	state    game.State
	outcomes []game.Outcome
	stopView game.State
}

// plan groups the transitions by the mover's stick count so that a sweep can
// hand out whole rows to workers.
func (s *Solver) plan() [][]transition {
	rows := s.space.DecisionStates()
	plan := make([][]transition, len(rows))
	for i, row := range rows {
		plan[i] = make([]transition, len(row))
		for j, state := range row {
			plan[i][j] = transition{
				state:    state,
				outcomes: s.rules.Outcomes(state),
				stopView: state.OpponentView(),
			}
		}
	}
	return plan
}

// Solve runs value iteration from the round 0 boundary until the tables stop
// moving or the round budget is spent.
func (s *Solver) Solve() (*Solution, error) {
	if s.rules.MaxSticks() < 1 || s.rules.MaxPits() < 1 {
		return nil, fmt.Errorf("invalid rules: %d sticks, %d pits", s.rules.MaxSticks(), s.rules.MaxPits())
	}
	if s.rules.Faces() <= s.rules.MaxPits() {
		return nil, fmt.Errorf("invalid rules: %d faces cannot cover %d pits and the six", s.rules.Faces(), s.rules.MaxPits())
	}

	plan := s.plan()
	buffers := [2]*Tables{newTables(s.space), newTables(s.space)}
	buffers[0].seed()
	buffers[1].seed()
	current := 0

	s.metrics.Start(s.workers)
	log.Debug().Msgf("solving %d sticks x %d pits with %d workers", s.rules.MaxSticks(), s.rules.MaxPits(), s.workers)

	var stats RoundStats
	converged := false
	for round := 1; round <= s.maxRounds; round++ {
		prev, next := buffers[current], buffers[1-current]

		var err error
		stats, err = s.sweep(plan, prev, next)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		stats.Round = round

		// Swap roles: the round just written becomes the read source
		current = 1 - current
		s.metrics.AddRound(stats.Delta)
		if s.observer != nil {
			s.observer(stats, buffers[current])
		}

		if round%1000 == 0 {
			log.Debug().Msgf("round %d: delta=%g min completion=%g", round, stats.Delta, stats.MinCompletion)
		}
		if s.tolerance > 0 && stats.Delta <= s.tolerance {
			converged = true
			break
		}
	}

	if !converged {
		log.Warn().Msgf("round budget of %d exhausted with delta %g", s.maxRounds, stats.Delta)
	}
	log.Info().Msgf("solved in %d rounds with delta %g", stats.Round, stats.Delta)

	return &Solution{
		rules:     s.rules,
		tables:    buffers[current],
		stats:     stats,
		converged: converged,
		metrics:   s.metrics.Complete(converged),
	}, nil
}

// sweep computes every undecided entry of next from prev alone.
func (s *Solver) sweep(plan [][]transition, prev, next *Tables) (RoundStats, error) {
	rows := make([]RoundStats, len(plan))

	if s.workers <= 1 {
		for i, row := range plan {
			stats, err := sweepRow(row, prev, next)
			if err != nil {
				return RoundStats{}, err
			}
			rows[i] = stats
		}
		return merge(rows), nil
	}

	// Rows write disjoint cells of next and only read prev
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, row := range plan {
		g.Go(func() error {
			stats, err := sweepRow(row, prev, next)
			if err != nil {
				return err
			}
			rows[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RoundStats{}, err
	}
	return merge(rows), nil
}

func sweepRow(row []transition, prev, next *Tables) (RoundStats, error) {
	stats := RoundStats{MinCompletion: 1}
	for _, tr := range row {
		var value, done float64
		for _, outcome := range tr.outcomes {
			if outcome.PassesTurn {
				v, d := prev.handover(outcome.Next)
				value += outcome.Probability * v
				done += outcome.Probability * d
				continue
			}
			a := prev.branch(outcome.Next)
			value += outcome.Probability * prev.Value(outcome.Next, a)
			done += outcome.Probability * prev.Done(outcome.Next, a)
		}
		stopValue, stopDone := prev.handover(tr.stopView)

		if err := checkProbability(tr.state, value, done); err != nil {
			return stats, err
		}
		if err := checkProbability(tr.state, stopValue, stopDone); err != nil {
			return stats, err
		}

		stats.Delta = max(stats.Delta,
			math.Abs(value-prev.Value(tr.state, game.Continue)),
			math.Abs(stopValue-prev.Value(tr.state, game.Stop)),
			math.Abs(done-prev.Done(tr.state, game.Continue)),
			math.Abs(stopDone-prev.Done(tr.state, game.Stop)))
		stats.MinCompletion = min(stats.MinCompletion, done, stopDone)

		next.set(tr.state, game.Continue, value, done)
		next.set(tr.state, game.Stop, stopValue, stopDone)
	}
	return stats, nil
}

func checkProbability(s game.State, value, done float64) error {
	if value < -slack || done > 1+slack || value > done+slack {
		return fmt.Errorf("state %s: value %g and completion %g are not probabilities", s, value, done)
	}
	return nil
}

func merge(rows []RoundStats) RoundStats {
	merged := RoundStats{MinCompletion: 1}
	for _, row := range rows {
		merged.Delta = max(merged.Delta, row.Delta)
		merged.MinCompletion = min(merged.MinCompletion, row.MinCompletion)
	}
	return merged
}
