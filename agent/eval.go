package agent

import (
	"super6/game"
	"super6/solver"
)

type solvedAgent struct {
	solution *solver.Solution
}

// NewSolvedAgent returns an agent that plays the optimal strategy of a solution.
func NewSolvedAgent(solution *solver.Solution) Agent {
	return solvedAgent{solution: solution}
}

func (a solvedAgent) Name() string {
	return "solved"
}

func (a solvedAgent) Decide(state game.State) game.Action {
	return a.solution.Query(state).Recommended
}

type lookAheadAgent struct {
	rules    game.Rules
	evaluate game.Evaluate
}

// NewLookAheadAgent returns an agent that compares the evaluation of each
// action one roll ahead.
func NewLookAheadAgent(rules game.Rules, evaluate game.Evaluate) Agent {
	return lookAheadAgent{rules: rules, evaluate: evaluate}
}

func (a lookAheadAgent) Name() string {
	return "lookahead"
}

func (a lookAheadAgent) Decide(state game.State) game.Action {
	cont, stop := game.LookAhead(a.rules, a.evaluate, state)
	return findMax([]float64{cont, stop})
}

// findMax returns the action with the highest score, preferring stop on ties.
func findMax(scores []float64) game.Action {
	best := game.Stop
	for _, a := range game.Actions() {
		if scores[a] > scores[best] {
			best = a
		}
	}
	return best
}

// SolvedScores exposes the action values of a solution in table order.
func SolvedScores(solution *solver.Solution) func(game.State) []float64 {
	return func(state game.State) []float64 {
		r := solution.Query(state)
		return []float64{r.ValueContinue, r.ValueStop}
	}
}
