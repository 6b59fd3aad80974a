package game

import "fmt"

// Action is the choice a player makes before each roll.
type Action int

const (
	Continue Action = iota // Roll the die again
	Stop                   // End the turn voluntarily
)

// NumActions is the size of the action dimension of a value table.
const NumActions = 2

var actionNames = [NumActions]string{"continue", "stop"}

func (a Action) String() string {
	if a < 0 || int(a) >= NumActions {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns every action in table order.
func Actions() []Action {
	return []Action{Continue, Stop}
}
