package searcher

import (
	"sync"

	"golang.org/x/exp/rand"

	"super6/game"
)

type chance struct {
	sync.RWMutex
	parent   *decision
	state    game.State // State the die is thrown from
	player   int        // Player throwing the die
	children map[game.OutcomeKind]*decision
	rewards  float64
	visits   float64
}

func newChance(parent *decision) *chance {
	return &chance{
		parent:   parent,
		state:    parent.state,
		player:   parent.player,
		children: make(map[game.OutcomeKind]*decision, 3),
	}
}

func (c *chance) SelectOrExpand(rules game.Rules, rng *rand.Rand) (Node, bool) {
	outcome := game.Roll(rules, c.state, rng)

	c.Lock()
	defer c.Unlock()

	// Select if explored outcome
	child, selected := c.children[outcome.Kind]
	// Expand if unexplored outcome
	if !selected {
		player := c.player
		if outcome.PassesTurn {
			player = 1 - player
		}
		child = newDecision(c, outcome.Next, player, c.player)
		c.children[outcome.Kind] = child
	}

	child.applyLoss()
	return child, selected
}

func (c *chance) applyLoss() {
	c.Lock()
	defer c.Unlock()

	c.rewards += Loss
	c.visits++
}

func (c *chance) reverseLoss() {
	c.rewards -= Loss
	c.visits--
}

func (c *chance) score(bonus exploration) float64 {
	c.RLock()
	defer c.RUnlock()

	return bonus.bound(c.rewards, c.visits)
}

func (c *chance) Backup(player int, score float64) Node {
	c.Lock()
	defer c.Unlock()

	c.reverseLoss()

	c.rewards += computeReward(player, score, c.player)
	c.visits++

	return c.parent
}

func (c *chance) Visits() float64 {
	c.RLock()
	defer c.RUnlock()

	return c.visits
}
