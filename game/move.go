package game

// OutcomeKind identifies which part of the board a roll hits.
type OutcomeKind int

const (
	Hole        OutcomeKind = iota // The six: the stick leaves the game
	FreePit                        // An empty pit: the stick moves into the lid
	OccupiedPit                    // A filled pit: the stick there is taken and the turn ends
)

var outcomeNames = []string{"hole", "free_pit", "occupied_pit"}

func (k OutcomeKind) String() string {
	return outcomeNames[k]
}

// Outcome is one branch of a roll. When PassesTurn is set, Next is already
// expressed from the opponent's point of view.
type Outcome struct {
	Kind        OutcomeKind
	Probability float64
	Next        State
	PassesTurn  bool
}
