package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"super6/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Rewards estimate the chance of winning
const Win = 1.0
const Loss = 1 - Win

// MaxCutoff bounds the rollout depth before the evaluation function is used.
const MaxCutoff = 200

type Node interface {
	// SelectOrExpand picks or adds a child and reports whether the search
	// should keep descending from it.
	SelectOrExpand(rules game.Rules, rng *rand.Rand) (child Node, descend bool)
	// Backup credits a rollout in which player won with probability score
	// and returns the parent.
	Backup(player int, score float64) Node
	Visits() float64
	applyLoss()
	score(bonus exploration) float64
}

// computeReward is the share of a rollout owed to owner when player won with
// probability score.
func computeReward(player int, score float64, owner int) float64 {
	if player == owner {
		return score
	}
	return 1 - score
}

// exploration is c^2*ln(N) for a parent whose children were visited N times
// in total. Siblings are ranked against the same value.
type exploration float64

func explorationFor(parentVisits float64) exploration {
	if parentVisits <= 0 {
		panic("parent has no visits to explore from")
	}
	return exploration(CSquared * math.Log(parentVisits))
}

// bound is the UCT score rewards/visits + sqrt(c^2*ln(N)/visits) of a child.
func (e exploration) bound(rewards, visits float64) float64 {
	if visits <= 0 {
		panic("child has no visits")
	}
	return rewards/visits + math.Sqrt(float64(e)/visits)
}
