package searcher

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"super6/game"
)

type Option func(mcts *MCTS)

type MCTS struct {
	rules      game.Rules
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	rng        *rand.Rand // Seeds the goroutines of each search
	metrics    MetricsCollector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(rules game.Rules, goroutines int, options ...Option) *MCTS {
	if goroutines < 1 {
		panic("Must search with at least one goroutine")
	}
	m := &MCTS{ // Default values
		rules:      rules,
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateStickLead,
		rng:        rand.New(rand.NewSource(1)),
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Episodes() int {
	return m.episodes
}

// Simulate searches from state and returns the visit share of each action at
// the root. A decided state has no policy.
func (m *MCTS) Simulate(state game.State) (map[game.Action]float64, SearchMetrics) {
	root := newDecision(nil, state, 0, 0)

	m.metrics.Start(m.goroutines)
	if m.episodes > 0 {
		m.iterate(root)
	} else {
		m.countdown(root)
	}
	metric := m.metrics.Complete()

	return root.Policy(), metric
}

func (m *MCTS) seeds() []uint64 {
	seeds := make([]uint64, m.goroutines)
	for i := range seeds {
		seeds[i] = m.rng.Uint64()
	}
	return seeds
}

func (m *MCTS) iterate(root *decision) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for _, seed := range m.seeds() {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed))
			for range task {
				m.simulate(root, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision) {
	done := make(chan any)

	var wg sync.WaitGroup
	for _, seed := range m.seeds() {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, rng)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *decision, rng *rand.Rand) {
	leaf := selectThenExpand(root, m.rules, rng)
	player, score := rollout(m.rules, leaf.state, leaf.player, m.cutoff, m.evaluate, rng, m.metrics)
	backup(leaf, player, score)
}

func selectThenExpand(root *decision, rules game.Rules, rng *rand.Rand) *decision {
	var node Node = root
	for {
		child, descend := node.SelectOrExpand(rules, rng)
		if !descend || child == node {
			// Chance nodes always descend, so the search stops on a decision
			return child.(*decision)
		}
		node = child
	}
}

// rollout plays random actions from state and returns the player to move at
// the end with the probability that player wins.
func rollout(rules game.Rules, state game.State, player, cutoff int, evaluate game.Evaluate, rng *rand.Rand, metrics MetricsCollector) (int, float64) {
	depth := 0
	// Rollout till game over or for cutoff number of moves
	for !state.IsTerminal() && depth < cutoff {
		if rng.Intn(game.NumActions) == int(game.Stop) { // Random rollout policy
			state = state.OpponentView()
			player = 1 - player
		} else {
			outcome := game.Roll(rules, state, rng)
			state = outcome.Next
			if outcome.PassesTurn {
				player = 1 - player
			}
		}
		depth++
	}

	if state.IsTerminal() { // Game over before cutoff
		metrics.AddFullPlayout()
		win, _ := state.TerminalValue()
		return player, win
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return player, evaluate(state)
}

func backup(leaf Node, player int, score float64) {
	node := leaf
	for node != nil {
		node = node.Backup(player, score)
	}
}
