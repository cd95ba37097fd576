package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSeedZeroIsRandomish(t *testing.T) {
	s := New(0)
	assert.NotZero(t, s.state)
}

func TestIntnRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		n := s.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestIntnPanicsOnNonPositive(t *testing.T) {
	s := New(1)
	assert.Panics(t, func() { s.Intn(0) })
}

func TestChanceBounds(t *testing.T) {
	s := New(3)
	falseCount := 0
	for i := 0; i < 1000; i++ {
		if !s.Chance(0) {
			falseCount++
		}
	}
	assert.Equal(t, 1000, falseCount, "Chance(0) should never fire")

	s2 := New(3)
	trueCount := 0
	for i := 0; i < 1000; i++ {
		if s2.Chance(1) {
			trueCount++
		}
	}
	assert.Equal(t, 1000, trueCount, "Chance(1) should always fire")
}

func TestShuffleIsPermutation(t *testing.T) {
	s := New(9)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}
