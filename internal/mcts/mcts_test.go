package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/rng"
)

func newTestSearcher(seed int64) *Searcher {
	cfg := DefaultConfig()
	cfg.NSims = 100
	cfg.ReportPeriod = 0
	return New(pattern3.New(), nil, rng.New(seed), cfg)
}

// From the empty position with 100 simulations and a fixed seed, the
// returned move is legal and not resign (spec.md §8).
func TestSearchReturnsLegalMove(t *testing.T) {
	pos := board.NewPosition(9)
	s := newTestSearcher(1)
	decision, root := s.Search(pos)

	assert.NotEqual(t, board.ResignMove, decision.Move)
	require.NotNil(t, root)

	if decision.Move != board.PassMove {
		cp := pos.Copy()
		assert.NoError(t, cp.Play(decision.Move))
	}
}

func TestExpandCreatesPassChildWhenNoLegalMove(t *testing.T) {
	pos := board.NewPosition(2)
	// Fill the tiny board entirely with Ours so there is no empty point
	// left to expand into.
	for _, p := range pos.AllPoints() {
		pos.Colors[p] = board.Ours
	}
	s := newTestSearcher(1)
	root := &Node{Pos: pos}
	s.expand(root)

	require.Len(t, root.Children, 1)
	assert.Equal(t, board.PassMove, root.Children[0].Move)
}

func TestUrgencyFallsBackToExpectationWithoutRAVE(t *testing.T) {
	s := newTestSearcher(1)
	n := &Node{V: 4, W: 2, PV: PriorEven, PW: PriorEven / 2}
	assert.Equal(t, n.expectation(), s.urgency(n))
}

func TestWinrateZeroVisits(t *testing.T) {
	n := &Node{}
	assert.Equal(t, 0.0, n.Winrate())
}

func TestBestByVisitsExcludesSet(t *testing.T) {
	a := &Node{Move: board.Point(10), V: 5}
	b := &Node{Move: board.Point(20), V: 9}
	children := []*Node{a, b}

	assert.Equal(t, b, bestByVisits(children, nil))
	assert.Equal(t, a, bestByVisits(children, map[board.Point]bool{b.Move: true}))
}

func TestTopMovesOrdersByVisits(t *testing.T) {
	root := &Node{Children: []*Node{
		{Move: board.Point(1), V: 3},
		{Move: board.Point(2), V: 9},
		{Move: board.Point(3), V: 5},
	}}
	top := TopMoves(root, 2)
	require.Len(t, top, 2)
	assert.Equal(t, board.Point(2), top[0].Move)
	assert.Equal(t, board.Point(3), top[1].Move)
}

func TestUpdateNegatesScorePerLevel(t *testing.T) {
	leaf := &Node{}
	mid := &Node{Children: []*Node{leaf}}
	root := &Node{Children: []*Node{mid}}
	path := []*Node{root, mid, leaf}

	update(path, -1, map[board.Point]int{})

	assert.Equal(t, 1.0, leaf.V)
	assert.Equal(t, 1.0, leaf.W, "negative score at the leaf is a win for the side that just moved into it")
	assert.Equal(t, 1.0, mid.V)
	assert.Equal(t, 0.0, mid.W, "score flips sign one level up")
	assert.Equal(t, 1.0, root.V)
	assert.Equal(t, 1.0, root.W)
}
