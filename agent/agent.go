package agent

import "super6/game"

type Agent interface {
	// Name identifies the agent in experiment records
	Name() string
	// Decide picks the action for the player to move in state
	Decide(state game.State) game.Action
}
