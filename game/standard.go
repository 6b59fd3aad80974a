package game

import (
	"fmt"

	"super6/meta"
)

type StandardRules struct {
	Sticks int
	Pits   int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sticks: meta.MAX_STICKS,
		Pits:   meta.MAX_PITS,
	}
}

// NewRules returns rules for a board variant with the given bounds.
func NewRules(sticks, pits int) *StandardRules {
	return &StandardRules{
		Sticks: sticks,
		Pits:   pits,
	}
}

func (sr *StandardRules) MaxSticks() int {
	return sr.Sticks
}

func (sr *StandardRules) MaxPits() int {
	return sr.Pits
}

// Faces is one face per pit plus the six.
func (sr *StandardRules) Faces() int {
	return sr.Pits + 1
}

func (sr *StandardRules) IsLidFull(s State) bool {
	return s.Lid >= sr.Pits
}

// Validate checks that the bounds describe a playable board.
func (sr *StandardRules) Validate() error {
	if sr.Sticks < 1 {
		return fmt.Errorf("max sticks must be >= 1, got %d", sr.Sticks)
	}
	if sr.Pits < 1 {
		return fmt.Errorf("max pits must be >= 1, got %d", sr.Pits)
	}
	return nil
}

func (sr *StandardRules) Outcomes(s State) []Outcome {
	if s.IsTerminal() {
		panic(fmt.Sprintf("no roll from terminal state %s", s))
	}
	if s.Lid < 0 || s.Lid > sr.Pits || s.Mine > sr.Sticks || s.Theirs > sr.Sticks {
		panic(fmt.Sprintf("state %s out of bounds", s))
	}

	faces := float64(sr.Faces())
	outcomes := make([]Outcome, 0, 3)

	// Six: the stick drops through the hole and is gone
	outcomes = append(outcomes, Outcome{
		Kind:        Hole,
		Probability: 1 / faces,
		Next:        State{Lid: s.Lid, Mine: s.Mine - 1, Theirs: s.Theirs},
	})

	if !sr.IsLidFull(s) {
		outcomes = append(outcomes, Outcome{
			Kind:        FreePit,
			Probability: float64(sr.Pits-s.Lid) / faces,
			Next:        State{Lid: s.Lid + 1, Mine: s.Mine - 1, Theirs: s.Theirs},
		})
	}

	if s.Lid > 0 {
		// The taken stick joins the hand, capped at the table bound
		taken := min(s.Mine+1, sr.Sticks)
		after := State{Lid: s.Lid - 1, Mine: taken, Theirs: s.Theirs}
		outcomes = append(outcomes, Outcome{
			Kind:        OccupiedPit,
			Probability: float64(s.Lid) / faces,
			Next:        after.OpponentView(),
			PassesTurn:  true,
		})
	}

	return outcomes
}
