package playout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/rng"
)

// From the empty position, a rollout terminates within MAX_GAME_LEN plies
// and produces a finite score (spec.md §8 "Boundary behaviors").
func TestRolloutTerminatesWithFiniteScore(t *testing.T) {
	pos := board.NewPosition(9)
	m3 := pattern3.New()
	src := rng.New(1)

	result := Rollout(pos, m3, src, nil)
	assert.False(t, math.IsNaN(result.Score))
	assert.False(t, math.IsInf(result.Score, 0))

	// pos itself must be untouched: Rollout works on a private copy.
	for _, p := range pos.AllPoints() {
		assert.Equal(t, board.Empty, pos.Color(p))
	}
}

// The benchmark mode's N-playout mean is deterministic for a fixed seed
// (spec.md §8), exercising mcplayout directly rather than through MCTS.
func TestBenchmarkMeanDeterministic(t *testing.T) {
	m3 := pattern3.New()

	pos1 := board.NewPosition(board.DefaultN)
	mean1 := BenchmarkMean(pos1, m3, rng.New(1), 2000)

	pos2 := board.NewPosition(board.DefaultN)
	mean2 := BenchmarkMean(pos2, m3, rng.New(1), 2000)

	assert.Equal(t, mean1, mean2)
	assert.False(t, math.IsNaN(mean1))
}

func TestRolloutIsDeterministicForFixedSeed(t *testing.T) {
	m3 := pattern3.New()

	pos1 := board.NewPosition(9)
	r1 := Rollout(pos1, m3, rng.New(42), nil)

	pos2 := board.NewPosition(9)
	r2 := Rollout(pos2, m3, rng.New(42), nil)

	assert.Equal(t, r1.Score, r2.Score)
}

func TestRolloutAMAFSignsAreUnit(t *testing.T) {
	pos := board.NewPosition(9)
	m3 := pattern3.New()
	src := rng.New(5)

	result := Rollout(pos, m3, src, nil)
	for pt, sign := range result.AMAF {
		assert.Contains(t, []int{1, -1}, sign, "AMAF sign for point %v must be +-1", pt)
	}
}

func TestPlayIfAcceptedRejectsOccupiedPoint(t *testing.T) {
	pos := board.NewPosition(9)
	src := rng.New(1)
	p := pos.Point(5, 5)
	require.NoError(t, pos.Play(p))

	ok := playIfAccepted(pos, p, src, true)
	assert.False(t, ok)
}

func TestBuildCandidateListEmptyAtGameStart(t *testing.T) {
	pos := board.NewPosition(9)
	src := rng.New(1)
	list := buildCandidateList(pos, src)
	assert.Empty(t, list, "no last move yet, so the neighborhood candidate list is empty")
}

func TestBuildCandidateListIncludesLastMoveNeighborhood(t *testing.T) {
	pos := board.NewPosition(9)
	src := rng.New(1)
	p := pos.Point(5, 5)
	require.NoError(t, pos.Play(p))

	list := buildCandidateList(pos, src)
	assert.Contains(t, list, p)
	assert.Contains(t, list, pos.Point(6, 5))
}
