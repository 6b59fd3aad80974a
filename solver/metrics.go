package solver

import (
	"math"
	"sync/atomic"
	"time"
)

type SolveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Rounds    int64
	Workers   int
	Delta     float64
	Converged bool
}

type MetricsCollector interface {
	Start(workers int)
	AddRound(delta float64)
	Complete(converged bool) SolveMetrics
}

type metricsCollector struct {
	startTime time.Time
	workers   int
	rounds    atomic.Int64
	delta     atomic.Uint64 // float64 bits
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
	m.rounds.Store(0)
}

func (m *metricsCollector) AddRound(delta float64) {
	m.rounds.Add(1)
	m.delta.Store(math.Float64bits(delta))
}

func (m *metricsCollector) Complete(converged bool) SolveMetrics {
	return SolveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Rounds:    m.rounds.Load(),
		Workers:   m.workers,
		Delta:     math.Float64frombits(m.delta.Load()),
		Converged: converged,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(workers int)                    {}
func (m *noMetricsCollector) AddRound(delta float64)               {}
func (m *noMetricsCollector) Complete(converged bool) SolveMetrics { return SolveMetrics{} }
