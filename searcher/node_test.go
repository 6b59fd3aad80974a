package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"super6/game"
)

func TestDecision(t *testing.T) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(1))

	t.Run("terminal node selects itself", func(t *testing.T) {
		d := newDecision(nil, game.State{Lid: 2, Mine: 0, Theirs: 3}, 0, 0)

		child, descend := d.SelectOrExpand(rules, rng)
		require.Same(t, d, child)
		require.False(t, descend)
	})

	t.Run("expands continue into a chance node first", func(t *testing.T) {
		d := newDecision(nil, game.State{Lid: 2, Mine: 3, Theirs: 3}, 0, 0)

		child, descend := d.SelectOrExpand(rules, rng)
		c, ok := child.(*chance)
		require.True(t, ok)
		require.True(t, descend, "The die still has to be thrown")
		require.Equal(t, 0, c.player)
		require.Equal(t, 1.0, c.Visits(), "Expanded child should carry a virtual loss")
	})

	t.Run("expands stop into the opponent's decision", func(t *testing.T) {
		s := game.State{Lid: 2, Mine: 3, Theirs: 4}
		d := newDecision(nil, s, 0, 0)
		d.SelectOrExpand(rules, rng)

		child, descend := d.SelectOrExpand(rules, rng)
		next, ok := child.(*decision)
		require.True(t, ok)
		require.False(t, descend, "A new decision is rolled out")
		require.Equal(t, s.OpponentView(), next.state)
		require.Equal(t, 1, next.player)
		require.Equal(t, 0, next.owner)
	})

	t.Run("backup credits each owner", func(t *testing.T) {
		root := newDecision(nil, game.State{Lid: 2, Mine: 3, Theirs: 4}, 0, 0)
		root.SelectOrExpand(rules, rng)
		child, _ := root.SelectOrExpand(rules, rng)
		stop := child.(*decision)

		// The opponent, to move after the stop, wins with probability 0.8
		backup(stop, 1, 0.8)

		require.Equal(t, 1.0, stop.Visits(), "Virtual loss should be reversed")
		require.InDelta(t, 0.2, stop.rewards, 1e-12)
		require.Equal(t, 1.0, root.Visits(), "Root has no virtual loss to reverse")
		require.InDelta(t, 0.2, root.rewards, 1e-12)
	})

	t.Run("policy follows child visits", func(t *testing.T) {
		root := newDecision(nil, game.State{Lid: 0, Mine: 3, Theirs: 3}, 0, 0)
		require.Empty(t, root.Policy())

		root.SelectOrExpand(rules, rng)
		root.SelectOrExpand(rules, rng)
		root.children[0].applyLoss()

		policy := root.Policy()
		require.InDelta(t, 2.0/3, policy[game.Continue], 1e-12)
		require.InDelta(t, 1.0/3, policy[game.Stop], 1e-12)
	})
}

func TestChance(t *testing.T) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(3))
	parent := newDecision(nil, game.State{Lid: 5, Mine: 2, Theirs: 2}, 0, 0)
	c := newChance(parent)

	seen := 0
	for i := 0; i < 200; i++ {
		child, selected := c.SelectOrExpand(rules, rng)
		d := child.(*decision)
		if !selected {
			seen++
		}
		switch d.state {
		case game.State{Lid: 5, Mine: 1, Theirs: 2}:
			require.Equal(t, 0, d.player, "The six keeps the turn")
		case game.State{Lid: 4, Mine: 2, Theirs: 3}:
			require.Equal(t, 1, d.player, "Taking a stick passes the turn")
		default:
			require.Fail(t, "unexpected outcome", "%s", d.state)
		}
	}
	require.Equal(t, 2, seen, "A full lid has two outcomes and each is expanded once")
	require.Len(t, c.children, 2)
}

func TestRollout(t *testing.T) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(5))
	collector := NewMetricsCollector()
	collector.Start(1)

	player, score := rollout(rules, game.State{Lid: 0, Mine: 0, Theirs: 2}, 1, MaxCutoff, game.EvaluateStickLead, rng, collector)
	require.Equal(t, 1, player)
	require.Equal(t, 1.0, score)
	require.Equal(t, int64(1), collector.Complete().FullPlayouts)

	evaluated := func(game.State) float64 { return 0.3 }
	_, score = rollout(rules, game.State{Lid: 0, Mine: 16, Theirs: 16}, 0, 1, evaluated, rng, collector)
	require.Equal(t, 0.3, score, "A single step cannot shed sixteen sticks")
}
