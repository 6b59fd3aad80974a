package game

import "fmt"

// Space enumerates the bounded states of a rule set and maps each
// (state, action) pair onto a flat table offset laid out as
// [mine][lid][theirs][action].
type Space struct {
	maxSticks int
	maxPits   int
}

func NewSpace(rules Rules) Space {
	return Space{
		maxSticks: rules.MaxSticks(),
		maxPits:   rules.MaxPits(),
	}
}

func (sp Space) MaxSticks() int {
	return sp.maxSticks
}

func (sp Space) MaxPits() int {
	return sp.maxPits
}

// Len is the number of table cells, actions included.
func (sp Space) Len() int {
	return (sp.maxSticks + 1) * (sp.maxPits + 1) * (sp.maxSticks + 1) * NumActions
}

func (sp Space) Contains(s State) bool {
	return s.Lid >= 0 && s.Lid <= sp.maxPits &&
		s.Mine >= 0 && s.Mine <= sp.maxSticks &&
		s.Theirs >= 0 && s.Theirs <= sp.maxSticks
}

// Index returns the flat offset of (s, a). Out of range pairs are a bug in
// the caller and panic.
func (sp Space) Index(s State, a Action) int {
	if !sp.Contains(s) {
		panic(fmt.Sprintf("state %s outside space %d sticks x %d pits", s, sp.maxSticks, sp.maxPits))
	}
	if a < 0 || int(a) >= NumActions {
		panic(fmt.Sprintf("unknown action %d", int(a)))
	}
	lids := sp.maxPits + 1
	hands := sp.maxSticks + 1
	return ((s.Mine*lids+s.Lid)*hands+s.Theirs)*NumActions + int(a)
}

// States returns every state of the space, terminal ones included.
func (sp Space) States() []State {
	states := make([]State, 0, (sp.maxSticks+1)*(sp.maxPits+1)*(sp.maxSticks+1))
	for mine := 0; mine <= sp.maxSticks; mine++ {
		for lid := 0; lid <= sp.maxPits; lid++ {
			for theirs := 0; theirs <= sp.maxSticks; theirs++ {
				states = append(states, State{Lid: lid, Mine: mine, Theirs: theirs})
			}
		}
	}
	return states
}

// DecisionStates returns the states grouped by the mover's stick count, in
// which a player has to choose an action. Row i holds mine == i+1.
func (sp Space) DecisionStates() [][]State {
	rows := make([][]State, 0, sp.maxSticks)
	for mine := 1; mine <= sp.maxSticks; mine++ {
		row := make([]State, 0, (sp.maxPits+1)*sp.maxSticks)
		for lid := 0; lid <= sp.maxPits; lid++ {
			for theirs := 1; theirs <= sp.maxSticks; theirs++ {
				row = append(row, State{Lid: lid, Mine: mine, Theirs: theirs})
			}
		}
		rows = append(rows, row)
	}
	return rows
}
