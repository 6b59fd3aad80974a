package game

// The game package models Super Six as a finite state space: sticks in the lid,
// sticks in the hand of the player to move, and sticks in the opponent's hand.
// A player wins by getting rid of all of their sticks.

// State is a mine/lid/theirs situation seen from the player who has to decide.
// States are small values and are always passed by copy.
type State struct {
	Lid    int // Sticks resting in the lid
	Mine   int // Sticks held by the player to move
	Theirs int // Sticks held by the opponent
}

// Evaluate returns the probability that the player to move in a state wins.
type Evaluate func(State) float64
