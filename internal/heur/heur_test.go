package heur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherboard/migo/internal/board"
)

func TestFixAtariNotAtariWithFourLiberties(t *testing.T) {
	pos := board.NewPosition(9)
	p := pos.Point(5, 5)
	require.NoError(t, pos.Play(p))
	isAtari, moves, _ := FixAtari(pos, p, false, true, false)
	assert.False(t, isAtari)
	assert.Empty(t, moves)
}

// surroundThreeSides plays a single stone at (5,5) and has the opponent
// enclose it on three sides, ending with the enclosing side to move and
// one liberty (5,6) left open. Strict move alternation means the only
// way to leave the enclosing side "Ours" again is to interleave harmless
// filler moves for the stone's owner.
func surroundThreeSides(t *testing.T, pos *board.Position) board.Point {
	t.Helper()
	target := pos.Point(5, 5)
	setup := []board.Point{
		target,          // owner plays the stone
		pos.Point(5, 4), // enclosing side: south
		pos.Point(9, 9), // owner: filler
		pos.Point(4, 5), // enclosing side: west
		pos.Point(9, 8), // owner: filler
		pos.Point(6, 5), // enclosing side: east
		pos.Point(9, 7), // owner: filler
	}
	for i, m := range setup {
		require.NoError(t, pos.Play(m), "move %d", i)
	}
	return target
}

func TestFixAtariCapturesOneLibertyEnemyBlock(t *testing.T) {
	pos := board.NewPosition(9)
	target := surroundThreeSides(t, pos)
	require.Equal(t, board.Theirs, pos.Color(target))

	isAtari, moves, sizes := FixAtari(pos, target, false, true, false)
	require.True(t, isAtari)
	require.Len(t, moves, 1)
	assert.Equal(t, pos.Point(5, 6), moves[0])
	assert.Equal(t, []int{1}, sizes)
}

func TestFixAtariSinglePtOKSuppressesOneStoneAtari(t *testing.T) {
	pos := board.NewPosition(9)
	target := surroundThreeSides(t, pos)

	isAtari, moves, _ := FixAtari(pos, target, true, true, false)
	assert.False(t, isAtari)
	assert.Empty(t, moves)
}

func TestComputeCFGDistancesZeroAtOrigin(t *testing.T) {
	pos := board.NewPosition(9)
	p := pos.Point(5, 5)
	dist := ComputeCFGDistances(pos, p)
	assert.Equal(t, 0, dist[p])
}

func TestComputeCFGDistancesIncrementsAcrossEmpty(t *testing.T) {
	pos := board.NewPosition(9)
	p := pos.Point(5, 5)
	dist := ComputeCFGDistances(pos, p)
	assert.Equal(t, 1, dist[pos.Point(6, 5)])
	assert.Equal(t, 2, dist[pos.Point(7, 5)])
}

func TestLineHeightEdgeAndCenter(t *testing.T) {
	pos := board.NewPosition(9)
	assert.Equal(t, 0, LineHeight(pos, pos.Point(1, 5)))
	assert.Equal(t, 0, LineHeight(pos, pos.Point(5, 1)))
	assert.Equal(t, 4, LineHeight(pos, pos.Point(5, 5)))
}

func TestEmptyAreaOnEmptyBoard(t *testing.T) {
	pos := board.NewPosition(9)
	assert.True(t, EmptyArea(pos, pos.Point(5, 5), 3))
}

func TestEmptyAreaFalseNearStone(t *testing.T) {
	pos := board.NewPosition(9)
	require.NoError(t, pos.Play(pos.Point(6, 5)))
	assert.False(t, EmptyArea(pos, pos.Point(5, 5), 3))
}
