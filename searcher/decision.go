package searcher

import (
	"sync"

	"golang.org/x/exp/rand"

	"super6/game"
)

type decision struct {
	sync.RWMutex
	parent   Node
	state    game.State // Seen from the player to move
	player   int        // Player to move
	owner    int        // Player credited with the rewards
	actions  []game.Action
	children []Node
	rewards  float64
	visits   float64
}

func newDecision(parent Node, state game.State, player, owner int) *decision {
	var actions []game.Action
	if !state.IsTerminal() {
		actions = game.Actions()
	}
	return &decision{
		parent:   parent,
		state:    state,
		player:   player,
		owner:    owner,
		actions:  actions,
		children: make([]Node, 0, len(actions)),
	}
}

func (d *decision) SelectOrExpand(rules game.Rules, rng *rand.Rand) (Node, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.actions) == 0 { // Terminal node
		return d, false
	}

	if len(d.actions) > len(d.children) { // Expandable node
		child := d.addChild()
		child.applyLoss()
		_, rolls := child.(*chance)
		return child, rolls
	}

	// Fully expanded node
	child := d.children[d.pickChild()]
	child.applyLoss()
	return child, true
}

func (d *decision) addChild() Node {
	var child Node
	switch d.actions[len(d.children)] {
	case game.Continue:
		child = newChance(d)
	case game.Stop:
		child = newDecision(d, d.state.OpponentView(), 1-d.player, d.player)
	}
	d.children = append(d.children, child)
	return child
}

func (d *decision) pickChild() int {
	// Children carry at least their virtual loss
	total := 0.0
	for _, child := range d.children {
		total += child.Visits()
	}
	bonus := explorationFor(total)

	best := -1
	bestScore := 0.0
	for i, child := range d.children {
		score := child.score(bonus)
		if best < 0 || score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(bonus exploration) float64 {
	d.RLock()
	defer d.RUnlock()

	return bonus.bound(d.rewards, d.visits)
}

func (d *decision) Backup(player int, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.owner)
	d.visits++

	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy is the visit share of each expanded action.
func (d *decision) Policy() map[game.Action]float64 {
	d.RLock()
	defer d.RUnlock()

	total := 0.0
	for _, child := range d.children {
		total += child.Visits()
	}
	policy := make(map[game.Action]float64, len(d.children))
	if total == 0 {
		return policy
	}
	for i, child := range d.children {
		policy[d.actions[i]] = child.Visits() / total
	}
	return policy
}
