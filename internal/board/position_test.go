package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionEmpty(t *testing.T) {
	pos := NewPosition(9)
	for _, p := range pos.AllPoints() {
		assert.Equal(t, Empty, pos.Color(p))
	}
	assert.Equal(t, DefaultKomi, pos.Komi)
	assert.Equal(t, NoPoint, pos.Ko)
}

func TestPlayTogglesOursTheirs(t *testing.T) {
	pos := NewPosition(9)
	p := pos.Point(5, 5)
	require.NoError(t, pos.Play(p))
	assert.Equal(t, Theirs, pos.Color(p), "after Play, the side that moved is now Theirs from the new mover's view")
}

func TestPlayOccupiedIsIllegal(t *testing.T) {
	pos := NewPosition(9)
	p := pos.Point(5, 5)
	require.NoError(t, pos.Play(p))
	err := pos.Play(p)
	assert.ErrorIs(t, err, ErrOccupied)
}

func TestSuicideIsIllegal(t *testing.T) {
	pos := NewPosition(9)
	// Surround 1,1 with Theirs stones so placing Ours there is suicide.
	require.NoError(t, pos.Play(pos.Point(2, 1)))
	pos.swapColors() // put Ours back to move without swapping who's "surrounding"
	require.NoError(t, pos.Play(pos.Point(1, 2)))
	err := pos.Play(pos.Point(1, 1))
	assert.ErrorIs(t, err, ErrSuicide)
}

func TestCaptureRemovesStones(t *testing.T) {
	pos := NewPosition(9)
	// The first mover plays the corner 1,1 and a filler at 5,5; the second
	// mover plays 2,1 and then 1,2, taking the corner stone's last liberty.
	moves := []Point{pos.Point(1, 1), pos.Point(2, 1), pos.Point(5, 5), pos.Point(1, 2)}
	for _, m := range moves {
		require.NoError(t, pos.Play(m))
	}
	assert.Equal(t, Empty, pos.Color(pos.Point(1, 1)), "corner stone should have been captured")
	assert.Equal(t, 1, pos.CapTheirs, "the mover before this capture should show it as CapTheirs from their own later perspective")
}

func TestKoRetakeIllegal(t *testing.T) {
	pos := NewPosition(9)
	// Build a corner ko around (1,1): (3,1) and (2,2) wall off (2,1)'s only
	// other liberties, (1,2) is a second Theirs stone sharing the corner
	// (kept alive by its own liberty at (1,3)) so (1,1) is eye-ish for
	// Theirs before the capturing play. Playing (1,1) then captures the
	// lone stone at (2,1) and nothing else, setting pos.Ko to (2,1).
	setup := []Point{
		pos.Point(3, 1), pos.Point(2, 1),
		pos.Point(2, 2), pos.Point(1, 2),
	}
	for i, m := range setup {
		require.NoError(t, pos.Play(m), "setup move %d", i)
	}

	require.NoError(t, pos.Play(pos.Point(1, 1)))
	require.Equal(t, pos.Point(2, 1), pos.Ko, "capturing the lone corner stone must set Ko to the captured point")
	assert.Equal(t, Empty, pos.Color(pos.Point(2, 1)))
	assert.NotEqual(t, Empty, pos.Color(pos.Point(1, 2)), "the second Theirs stone has its own liberty and must survive")

	err := pos.Play(pos.Point(2, 1))
	assert.ErrorIs(t, err, ErrRetakesKo, "the immediate retake at the ko point must be rejected")
}

func TestPlayPassUndoRoundTrip(t *testing.T) {
	pos := NewPosition(9)
	before := pos.Copy()

	p := pos.Point(4, 4)
	require.NoError(t, pos.Play(p))
	require.NoError(t, pos.Undo())
	assertPositionsEqual(t, before, pos)

	pos.Pass()
	require.NoError(t, pos.Undo())
	assertPositionsEqual(t, before, pos)
}

func TestUndoUnavailableAfterMultiCapture(t *testing.T) {
	pos := NewPosition(9)
	// Build a two-stone Theirs block at (1,1)-(2,1) walled in by Ours at
	// (1,2) and (3,1), leaving (2,2) as its only liberty, then capture both
	// with one Ours move there.
	setup := []Point{
		pos.Point(1, 2), pos.Point(1, 1),
		pos.Point(3, 1), pos.Point(2, 1),
	}
	for _, m := range setup {
		require.NoError(t, pos.Play(m))
	}
	require.NoError(t, pos.Play(pos.Point(2, 2)))
	err := pos.Undo()
	assert.ErrorIs(t, err, ErrUndoNotAvailable)
}

func TestScoreSignsAndKomi(t *testing.T) {
	pos := NewPosition(5)
	pos.Komi = 0.5
	// Fill every point Ours; score should be N*N minus komi (MoveNum even).
	for _, p := range pos.AllPoints() {
		pos.Colors[p] = Ours
	}
	score := pos.Score(nil)
	assert.Equal(t, float64(25)-0.5, score)
}

func TestIsTrueEyeCorner(t *testing.T) {
	pos := NewPosition(9)
	require.NoError(t, pos.Play(pos.Point(1, 2)))
	pos.swapColors()
	require.NoError(t, pos.Play(pos.Point(2, 1)))
	pos.swapColors()
	assert.True(t, pos.IsTrueEye(pos.Point(1, 1)), "corner point with both orthogonal neighbors Ours should be a true eye")
}

func TestBlockBoundedStopsEarly(t *testing.T) {
	pos := NewPosition(9)
	p := pos.Point(5, 5)
	require.NoError(t, pos.Play(p))
	_, libs, complete := pos.BlockBounded(p, 1)
	assert.False(t, complete, "a lone stone in the center has 4 liberties, well past bound 1")
	assert.GreaterOrEqual(t, len(libs), 1)
}

func assertPositionsEqual(t *testing.T, a, b *Position) {
	t.Helper()
	require.Equal(t, a.Colors, b.Colors)
	require.Equal(t, a.env4, b.env4)
	require.Equal(t, a.env4d, b.env4d)
	require.Equal(t, a.Ko, b.Ko)
	require.Equal(t, a.MoveNum, b.MoveNum)
	require.Equal(t, a.CapOurs, b.CapOurs)
	require.Equal(t, a.CapTheirs, b.CapTheirs)
}
