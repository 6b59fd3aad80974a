package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Goroutines   int
	Episodes     int64
	FullPlayouts int64 // Rollouts that reached a decided state before the cutoff
}

type MetricsCollector interface {
	Start(goroutines int)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	goroutines   int
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Goroutines:   m.goroutines,
		Episodes:     m.episodes.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(goroutines int)    {}
func (m *noMetricsCollector) AddFullPlayout()         {}
func (m *noMetricsCollector) AddEpisode()             {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
