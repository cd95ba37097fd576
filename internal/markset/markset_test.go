package markset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIsMarked(t *testing.T) {
	s := NewSet(10)
	assert.False(t, s.IsMarked(3))
	s.Mark(3)
	assert.True(t, s.IsMarked(3))
	assert.False(t, s.IsMarked(4))
}

func TestClearRemovesMarks(t *testing.T) {
	s := NewSet(10)
	s.Mark(1)
	s.Mark(2)
	s.Clear()
	assert.False(t, s.IsMarked(1))
	assert.False(t, s.IsMarked(2))
	s.Mark(1)
	assert.True(t, s.IsMarked(1))
}

func TestResetGrowsAndClears(t *testing.T) {
	s := NewSet(4)
	s.Mark(1)
	s.Reset(8)
	assert.False(t, s.IsMarked(1))
	s.Mark(7)
	assert.True(t, s.IsMarked(7))
}

func TestEnterLeaveGuardsReentrance(t *testing.T) {
	s := NewSet(4)
	s.Enter()
	assert.Panics(t, func() { s.Enter() })
	s.Leave()
	assert.NotPanics(t, func() { s.Enter() })
	s.Leave()
}

func TestListAddRejectsDuplicates(t *testing.T) {
	l := NewList(10)
	assert.True(t, l.Add(3))
	assert.False(t, l.Add(3))
	assert.True(t, l.Add(4))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []int{3, 4}, l.Items())
}

func TestListContains(t *testing.T) {
	l := NewList(10)
	l.Add(5)
	assert.True(t, l.Contains(5))
	assert.False(t, l.Contains(6))
}

func TestListResetClears(t *testing.T) {
	l := NewList(10)
	l.Add(1)
	l.Add(2)
	l.Reset(10)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains(1))
}
