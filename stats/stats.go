package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic keeps a running mean and variance with Welford's algorithm.
type Statistic struct {
	n    int
	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Iterations() int {
	return s.n
}

// Interval is a win rate with a confidence band clamped to [0, 1].
type Interval struct {
	Rate  float64
	Lower float64
	Upper float64
}

func (i Interval) Contains(p float64) bool {
	return p >= i.Lower && p <= i.Upper
}

// WinRateInterval is the normal approximation of the binomial win rate at the
// given confidence in percent.
func WinRateInterval(wins, games int, confidence float64) Interval {
	if games <= 0 {
		return Interval{Rate: 0, Lower: 0, Upper: 1}
	}
	rate := float64(wins) / float64(games)
	margin := ZVal(confidence) * math.Sqrt(rate*(1-rate)/float64(games))
	return Interval{
		Rate:  rate,
		Lower: math.Max(0, rate-margin),
		Upper: math.Min(1, rate+margin),
	}
}
