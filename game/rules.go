package game

type Rules interface {
	MaxSticks() int // Largest stick count a hand can hold
	MaxPits() int   // Number of pits in the lid
	Faces() int     // Faces of the die; the last face is the six
	IsLidFull(s State) bool
	// Outcomes lists the dice branches of a roll from a non-terminal state
	Outcomes(s State) []Outcome
}
