package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Iterations(), len(c.scores))
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489))
	is.True(FuzzyEqual(ZVal(0), 0))
}

func TestWinRateInterval(t *testing.T) {
	is := is.New(t)

	i := WinRateInterval(50, 100, 95)
	is.True(FuzzyEqual(i.Rate, 0.5))
	is.True(FuzzyEqual(i.Lower, 0.5-1.959963984540054*0.05))
	is.True(FuzzyEqual(i.Upper, 0.5+1.959963984540054*0.05))
	is.True(i.Contains(0.45))
	is.True(!i.Contains(0.3))

	// A clean sweep has no spread under the normal approximation.
	i = WinRateInterval(10, 10, 95)
	is.Equal(i.Lower, 1.0)
	is.Equal(i.Upper, 1.0)

	i = WinRateInterval(0, 0, 95)
	is.Equal(i, Interval{Rate: 0, Lower: 0, Upper: 1})
}
