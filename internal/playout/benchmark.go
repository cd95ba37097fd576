package playout

import (
	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/rng"
)

// BenchmarkMean runs n independent rollouts from pos (which Rollout never
// mutates, so every trial starts over from the same position) and returns
// the mean of their scores: the literal "benchmark mode's N-playout mean"
// property of spec.md §8, driven directly through mcplayout rather than
// through MCTS.
func BenchmarkMean(pos *board.Position, m3 *pattern3.Matcher, src *rng.Source, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += Rollout(pos, m3, src, nil).Score
	}
	return sum / float64(n)
}
