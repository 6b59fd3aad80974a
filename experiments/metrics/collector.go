package metrics

import (
	"sync/atomic"
	"time"
)

type GameMetric struct {
	StartingPlayer int // Player index
	Winner         int // Player index, -1 if the game was abandoned
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	Rolls          int
	Turns          int
}

// Finished reports whether the game produced a winner.
func (g GameMetric) Finished() bool {
	return g.Winner >= 0
}

type Collector interface {
	Start(startingPlayer int)
	AddRoll()
	AddTurn()
	Complete(winner int) GameMetric
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	rolls          atomic.Int32
	turns          atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
	m.rolls.Store(0)
	m.turns.Store(0)
}

func (m *collector) AddRoll() {
	m.rolls.Add(1)
}

func (m *collector) AddTurn() {
	m.turns.Add(1)
}

func (m *collector) Complete(winner int) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		Rolls:          int(m.rolls.Load()),
		Turns:          int(m.turns.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int) {}
func (m *dummyCollector) AddRoll()                 {}
func (m *dummyCollector) AddTurn()                 {}
func (m *dummyCollector) Complete(winner int) GameMetric {
	return GameMetric{Winner: winner}
}
