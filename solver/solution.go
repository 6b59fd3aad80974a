package solver

import (
	"super6/game"
)

// Result is the extractor's answer for one state.
type Result struct {
	State         game.State
	ValueContinue float64
	ValueStop     float64
	DoneContinue  float64
	DoneStop      float64
	Recommended   game.Action
}

// Value is the win probability under the recommended action.
func (r Result) Value() float64 {
	if r.Recommended == game.Continue {
		return r.ValueContinue
	}
	return r.ValueStop
}

// Done is the completion probability under the recommended action.
func (r Result) Done() float64 {
	if r.Recommended == game.Continue {
		return r.DoneContinue
	}
	return r.DoneStop
}

// Solution is the final, read-only pair of tables of a solver run.
type Solution struct {
	rules     game.Rules
	tables    *Tables
	stats     RoundStats
	converged bool
	metrics   SolveMetrics
}

// Query reads both actions of s and recommends one. Continue is only
// recommended when it is strictly better; ties go to stop.
func (sol *Solution) Query(s game.State) Result {
	r := Result{
		State:         s,
		ValueContinue: sol.tables.Value(s, game.Continue),
		ValueStop:     sol.tables.Value(s, game.Stop),
		DoneContinue:  sol.tables.Done(s, game.Continue),
		DoneStop:      sol.tables.Done(s, game.Stop),
		Recommended:   game.Stop,
	}
	if r.ValueContinue > r.ValueStop {
		r.Recommended = game.Continue
	}
	return r
}

// Evaluate returns the win probability of the player to move under optimal play.
func (sol *Solution) Evaluate(s game.State) float64 {
	return sol.Query(s).Value()
}

// TruncationBound is the probability mass of games from s still undecided
// when the round budget ran out, which bounds the error of its value.
func (sol *Solution) TruncationBound(s game.State) float64 {
	return 1 - sol.Query(s).Done()
}

func (sol *Solution) Tables() *Tables {
	return sol.tables
}

func (sol *Solution) Rules() game.Rules {
	return sol.rules
}

// Rounds is the number of sweeps that produced the tables.
func (sol *Solution) Rounds() int {
	return sol.stats.Round
}

// Delta is the max entry-wise change of the last sweep.
func (sol *Solution) Delta() float64 {
	return sol.stats.Delta
}

// Converged reports whether iteration stopped on tolerance rather than budget.
func (sol *Solution) Converged() bool {
	return sol.converged
}

func (sol *Solution) Metrics() SolveMetrics {
	return sol.metrics
}
