package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"super6/agent"
	"super6/experiments/metrics"
	"super6/game"
)

// LocalEngine referees two agents in process. State is always seen from the
// player to move, whose index is Current.
type LocalEngine struct {
	State   game.State
	Current int

	rules     game.Rules
	agents    [2]agent.Agent
	first     int
	rng       *rand.Rand
	collector metrics.Collector
}

type Option func(e *LocalEngine)

func WithCollector(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		e.collector = collector
	}
}

func NewLocalEngine(rules game.Rules, agents [2]agent.Agent, start game.State, first int, rng *rand.Rand, options ...Option) *LocalEngine {
	if first != 0 && first != 1 {
		panic(fmt.Sprintf("starting player %d is not 0 or 1", first))
	}
	if start.Mine > rules.MaxSticks() || start.Theirs > rules.MaxSticks() || start.Lid > rules.MaxPits() {
		panic(fmt.Sprintf("start state %s is off the board", start))
	}

	e := &LocalEngine{
		State:     start,
		Current:   first,
		rules:     rules,
		agents:    agents,
		first:     first,
		rng:       rng,
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until one player has no sticks left.
func (e *LocalEngine) Run() (int, metrics.GameMetric) {
	e.collector.Start(e.first)
	log.Debug().Msgf("%s is starting from %s", e.agents[e.Current].Name(), e.State)

	moves := 0
	for !e.State.IsTerminal() && moves < MaxMoves {
		action := e.agents[e.Current].Decide(e.State)
		moves++

		if action == game.Stop {
			e.pass(e.State.OpponentView())
			continue
		}

		outcome := game.Roll(e.rules, e.State, e.rng)
		e.collector.AddRoll()
		if outcome.PassesTurn {
			e.pass(outcome.Next)
			continue
		}
		e.State = outcome.Next
	}

	winner := e.Winner()
	if winner < 0 {
		log.Warn().Msgf("game abandoned after %d moves in %s", moves, e.State)
	}
	return winner, e.collector.Complete(winner)
}

func (e *LocalEngine) pass(next game.State) {
	e.State = next
	e.Current = 1 - e.Current
	e.collector.AddTurn()
}

// Winner is the index of the player who shed every stick, or -1 while the
// game is open.
func (e *LocalEngine) Winner() int {
	switch {
	case e.State.Won():
		return e.Current
	case e.State.Lost():
		return 1 - e.Current
	default:
		return -1
	}
}
