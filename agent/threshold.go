package agent

import (
	"fmt"

	"super6/game"
)

type thresholdAgent struct {
	lid int
}

// NewThresholdAgent returns an agent that keeps rolling until the lid holds at
// least lid sticks, then stops.
func NewThresholdAgent(lid int) Agent {
	return thresholdAgent{lid: lid}
}

func (a thresholdAgent) Name() string {
	return fmt.Sprintf("threshold-%d", a.lid)
}

func (a thresholdAgent) Decide(state game.State) game.Action {
	if state.Lid >= a.lid {
		return game.Stop
	}
	return game.Continue
}
