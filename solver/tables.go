package solver

import (
	"super6/game"
)

// Tables holds one round of the recurrence: the win probability and the
// completion probability of every (state, action) pair.
type Tables struct {
	space game.Space
	value []float64
	done  []float64
}

func newTables(space game.Space) *Tables {
	return &Tables{
		space: space,
		value: make([]float64, space.Len()),
		done:  make([]float64, space.Len()),
	}
}

// Value is the probability that the player to move in s wins after choosing a.
func (t *Tables) Value(s game.State, a game.Action) float64 {
	return t.value[t.space.Index(s, a)]
}

// Done is the probability that the game has ended after choosing a in s.
func (t *Tables) Done(s game.State, a game.Action) float64 {
	return t.done[t.space.Index(s, a)]
}

func (t *Tables) Space() game.Space {
	return t.space
}

func (t *Tables) set(s game.State, a game.Action, value, done float64) {
	i := t.space.Index(s, a)
	t.value[i] = value
	t.done[i] = done
}

// seed writes the boundary conditions of round 0. Decided states keep their
// values for every round; everything else starts at 0.
func (t *Tables) seed() {
	clear(t.value)
	clear(t.done)
	for _, s := range t.space.States() {
		if !s.IsTerminal() {
			continue
		}
		win, done := s.TerminalValue()
		for _, a := range game.Actions() {
			t.set(s, a, win, done)
		}
	}
}

// branch is the action a player picks after a roll that keeps the turn:
// stop only when it is strictly better.
func (t *Tables) branch(s game.State) game.Action {
	if t.Value(s, game.Stop) > t.Value(s, game.Continue) {
		return game.Stop
	}
	return game.Continue
}

// handover is the mover's win and completion probability when the opponent
// takes over in s. Mass of games still undecided is not credited to anyone.
func (t *Tables) handover(s game.State) (value, done float64) {
	done = t.Done(s, game.Continue)
	return done - t.Value(s, game.Continue), done
}
