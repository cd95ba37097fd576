package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/rng"
)

func TestLoadMissingFilesIsNonFatal(t *testing.T) {
	d, err := Load("/nonexistent/patterns.prob", "/nonexistent/patterns.spat", rng.New(1))
	require.NoError(t, err)
	require.NotNil(t, d)

	pos := board.NewPosition(9)
	prob, size := d.Probability(pos, pos.Point(5, 5))
	assert.Equal(t, -1.0, prob)
	assert.Equal(t, 0, size)
}

func TestLoadInsertsAllSymmetries(t *testing.T) {
	dir := t.TempDir()
	probPath := filepath.Join(dir, "patterns.prob")
	spatPath := filepath.Join(dir, "patterns.spat")

	require.NoError(t, os.WriteFile(probPath, []byte("0.75 10 5 (s:1)\n"), 0o644))

	// A four-character spatial string covers exactly gridcular tier 1 (the
	// nearest ring of four displacements); enough to exercise the load
	// path without needing 141 characters.
	require.NoError(t, os.WriteFile(spatPath, []byte("1 1 X...\n"), 0o644))

	d, err := Load(probPath, spatPath, rng.New(1))
	require.NoError(t, err)
	require.Equal(t, 8, d.n, "one pattern inserted under all 8 symmetries")
}

func TestTableInsertAndLookup(t *testing.T) {
	tb := newTable(4)
	tb.insert(123456789, 0.42)
	prob, found := tb.lookup(123456789)
	require.True(t, found)
	assert.Equal(t, 0.42, prob)

	_, found = tb.lookup(987654321)
	assert.False(t, found)
}

func TestTableGrowsUnderLoad(t *testing.T) {
	tb := newTable(2) // 4 slots
	for i := uint64(1); i <= 20; i++ {
		tb.insert(i<<20, float64(i))
	}
	for i := uint64(1); i <= 20; i++ {
		prob, found := tb.lookup(i << 20)
		require.True(t, found, "key %d should survive growth", i)
		assert.Equal(t, float64(i), prob)
	}
}

func TestGridcularDistMonotoneAlongAxis(t *testing.T) {
	assert.Less(t, gridcularDist(1, 0), gridcularDist(2, 0))
	assert.Equal(t, gridcularDist(1, 0), gridcularDist(0, 1))
}

func TestSizeBoundaryIsNonDecreasingAndCapped(t *testing.T) {
	for s := 1; s <= numSizes; s++ {
		assert.LessOrEqual(t, sizeBoundary[s-1], sizeBoundary[s])
	}
	assert.LessOrEqual(t, sizeBoundary[numSizes], maxNeighborhoodPoints)
}
