package agent

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"super6/game"
)

type samplingAgent struct {
	name        string
	evaluate    func(game.State) []float64
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent returns an agent that samples its action in proportion to
// the solved win probabilities, sharpened or flattened by temperature.
func NewSamplingAgent(evaluate func(game.State) []float64, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	name := fmt.Sprintf("sampling-t%g", temperature)
	return samplingAgent{name: name, evaluate: evaluate, temperature: temperature, rng: rng}
}

// NewRandomAgent returns an agent that continues or stops with equal odds.
func NewRandomAgent(rng *rand.Rand) Agent {
	uniform := func(game.State) []float64 { return []float64{1, 1} }
	return samplingAgent{name: "random", evaluate: uniform, temperature: 1, rng: rng}
}

func (a samplingAgent) Name() string {
	return a.name
}

func (a samplingAgent) Decide(state game.State) game.Action {
	policy := adjustTemperature(a.evaluate(state), a.temperature)
	return sample(policy, a.rng.Float64())
}

func adjustTemperature(policy []float64, temperature float64) []float64 {
	// Compute temperature-adjusted action probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(policy))
	for a, score := range policy {
		prob := math.Pow(score, exponent)
		sum += prob
		adjusted[a] = prob
	}
	if sum == 0 {
		// Nothing to prefer; fall back to uniform
		for a := range adjusted {
			adjusted[a] = 1 / float64(len(adjusted))
		}
		return adjusted
	}
	// Normalize
	for a := range adjusted {
		adjusted[a] /= sum
	}
	return adjusted
}

func sample(policy []float64, sampled float64) game.Action {
	cumulative := 0.0
	for a, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return game.Action(a)
		}
	}
	return game.Action(len(policy) - 1) // Fallback in case of rounding errors
}
