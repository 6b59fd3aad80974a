package engine

import (
	"super6/experiments/metrics"
	"super6/meta"
)

const MaxMoves = meta.MAX_MOVES

type Engine interface {
	// Run plays a game till one player has shed every stick or a max number of moves is reached
	Run() (winner int, gameMetric metrics.GameMetric)
}
