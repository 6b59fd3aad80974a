package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// FaceKind maps a die face onto the board: the last face is the six, the
// first lid faces count as occupied pits and the rest as free ones.
func FaceKind(face, lid, faces int) OutcomeKind {
	if face < 1 || face > faces {
		panic(fmt.Sprintf("face %d outside die of %d faces", face, faces))
	}
	switch {
	case face == faces:
		return Hole
	case face <= lid:
		return OccupiedPit
	default:
		return FreePit
	}
}

// Roll throws the die once from s and returns the branch taken.
func Roll(rules Rules, s State, rng *rand.Rand) Outcome {
	face := rng.Intn(rules.Faces()) + 1
	kind := FaceKind(face, s.Lid, rules.Faces())
	for _, outcome := range rules.Outcomes(s) {
		if outcome.Kind == kind {
			return outcome
		}
	}
	panic(fmt.Sprintf("no %s outcome from state %s", kind, s))
}
