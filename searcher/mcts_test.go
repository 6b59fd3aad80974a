package searcher

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"super6/game"
)

func TestNewMCTS(t *testing.T) {
	rules := game.NewStandardRules()

	require.Panics(t, func() { NewMCTS(rules, 1) }, "Should panic without a budget")
	require.Panics(t, func() { NewMCTS(rules, 0, WithEpisodes(10)) })
	require.Equal(t, 10, NewMCTS(rules, 1, WithEpisodes(10)).Episodes())
}

func TestSimulate(t *testing.T) {
	t.Run("finds the winning roll", func(t *testing.T) {
		m := NewMCTS(game.NewRules(1, 1), 1, WithEpisodes(300), WithMetrics())

		policy, metric := m.Simulate(game.State{Lid: 0, Mine: 1, Theirs: 1})

		require.Greater(t, policy[game.Continue], policy[game.Stop], "Any roll sheds the last stick")
		require.InDelta(t, 1.0, policy[game.Continue]+policy[game.Stop], 1e-12)
		require.Equal(t, int64(300), metric.Episodes)
		require.Equal(t, 1, metric.Goroutines)
	})

	t.Run("seeded search is reproducible", func(t *testing.T) {
		s := game.State{Lid: 3, Mine: 4, Theirs: 5}
		search := func() map[game.Action]float64 {
			m := NewMCTS(game.NewStandardRules(), 1, WithEpisodes(200), WithSeed(9))
			policy, _ := m.Simulate(s)
			return policy
		}

		require.Equal(t, search(), search())
	})

	t.Run("goroutines share the episodes", func(t *testing.T) {
		m := NewMCTS(game.NewStandardRules(), 4, WithEpisodes(400), WithMetrics())

		policy, metric := m.Simulate(game.State{Lid: 2, Mine: 6, Theirs: 6})

		require.Equal(t, int64(400), metric.Episodes)
		require.Len(t, policy, 2)
		require.InDelta(t, 1.0, policy[game.Continue]+policy[game.Stop], 1e-12)
	})

	t.Run("duration budget", func(t *testing.T) {
		m := NewMCTS(game.NewStandardRules(), 2, WithDuration(20*time.Millisecond), WithMetrics(), WithCutoff(20))

		_, metric := m.Simulate(game.State{Lid: 2, Mine: 6, Theirs: 6})

		require.Positive(t, metric.Episodes)
		require.GreaterOrEqual(t, metric.Duration, 20*time.Millisecond)
	})

	t.Run("cut off rollouts use the evaluation function", func(t *testing.T) {
		var calls atomic.Int64
		evaluate := func(game.State) float64 {
			calls.Add(1)
			return 0.5
		}
		m := NewMCTS(game.NewStandardRules(), 1, WithEpisodes(50), WithCutoff(1), WithEvaluationFn(evaluate))

		policy, _ := m.Simulate(game.State{Lid: 2, Mine: 9, Theirs: 9})

		require.Positive(t, calls.Load(), "Rollouts from a long game should hit the cutoff")
		require.InDelta(t, 1.0, policy[game.Continue]+policy[game.Stop], 1e-12)
	})

	t.Run("nil evaluation keeps the default", func(t *testing.T) {
		m := NewMCTS(game.NewStandardRules(), 1, WithEpisodes(5), WithEvaluationFn(nil))

		require.NotNil(t, m.evaluate)
		require.Equal(t, game.EvaluateStickLead(game.State{Lid: 1, Mine: 2, Theirs: 4}), m.evaluate(game.State{Lid: 1, Mine: 2, Theirs: 4}))
	})

	t.Run("decided state has no policy", func(t *testing.T) {
		m := NewMCTS(game.NewStandardRules(), 1, WithEpisodes(5))

		policy, _ := m.Simulate(game.State{Lid: 2, Mine: 0, Theirs: 6})
		require.Empty(t, policy)
	})
}
