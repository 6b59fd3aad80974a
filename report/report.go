package report

import (
	"fmt"

	"github.com/samber/lo"

	"super6/game"
	"super6/solver"
)

// Row is one printed line of the report.
type Row struct {
	solver.Result
}

func (r Row) String() string {
	return fmt.Sprintf("%s, %.6f, %.6f, %s", r.State, r.ValueContinue, r.ValueStop, r.Recommended)
}

// Rows queries every state with the given lid whose hands hold at most
// maxTotal+1 sticks together, ordered by mine then theirs.
func Rows(solution *solver.Solution, lid, maxTotal int) []Row {
	space := solution.Tables().Space()
	var states []game.State
	for mine := 1; mine <= maxTotal; mine++ {
		for theirs := 1; theirs <= maxTotal-mine+1; theirs++ {
			states = append(states, game.State{Lid: lid, Mine: mine, Theirs: theirs})
		}
	}
	states = lo.Filter(states, func(s game.State, _ int) bool {
		return space.Contains(s)
	})
	return lo.Map(states, func(s game.State, _ int) Row {
		return Row{solution.Query(s)}
	})
}

func Lines(solution *solver.Solution, lid, maxTotal int) []string {
	return lo.Map(Rows(solution, lid, maxTotal), func(r Row, _ int) string {
		return r.String()
	})
}

// SpecificStates are the combinations printed after the report.
var SpecificStates = []game.State{
	{Lid: 4, Mine: 1, Theirs: 1},
	{Lid: 3, Mine: 5, Theirs: 5},
	{Lid: 3, Mine: 6, Theirs: 6},
	{Lid: 5, Mine: 1, Theirs: 1},
}

// Specific queries SpecificStates, leaving out those the board cannot hold.
func Specific(solution *solver.Solution) []Row {
	space := solution.Tables().Space()
	return lo.FilterMap(SpecificStates, func(s game.State, _ int) (Row, bool) {
		if !space.Contains(s) {
			return Row{}, false
		}
		return Row{solution.Query(s)}, true
	})
}

// Reference is a known continue value at three decimals.
type Reference struct {
	State    game.State
	Expected string
}

var References = []Reference{
	{State: game.State{Lid: 4, Mine: 1, Theirs: 1}, Expected: "0.524"},
	{State: game.State{Lid: 5, Mine: 1, Theirs: 1}, Expected: "0.451"},
}

type Mismatch struct {
	Reference
	Got string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", m.State, m.Expected, m.Got)
}

// Check compares the solution against References. It only makes sense for the
// standard board; states the board cannot hold are reported as mismatches.
func Check(solution *solver.Solution) []Mismatch {
	space := solution.Tables().Space()
	var mismatches []Mismatch
	for _, ref := range References {
		got := "n/a"
		if space.Contains(ref.State) {
			got = fmt.Sprintf("%.3f", solution.Query(ref.State).ValueContinue)
		}
		if got != ref.Expected {
			mismatches = append(mismatches, Mismatch{Reference: ref, Got: got})
		}
	}
	return mismatches
}
