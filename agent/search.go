package agent

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"super6/game"
	"super6/searcher"
)

type searchAgent struct {
	mcts *searcher.MCTS
}

// NewSearchAgent returns an agent that runs a fresh tree search for every
// decision and plays the most visited action.
func NewSearchAgent(mcts *searcher.MCTS) Agent {
	return searchAgent{mcts: mcts}
}

func (a searchAgent) Name() string {
	return fmt.Sprintf("mcts-%d", a.mcts.Episodes())
}

func (a searchAgent) Decide(state game.State) game.Action {
	policy, metric := a.mcts.Simulate(state)
	log.Debug().Msgf("searched %s with %d episodes in %s", state, metric.Episodes, metric.Duration)
	return findMax([]float64{policy[game.Continue], policy[game.Stop]})
}
