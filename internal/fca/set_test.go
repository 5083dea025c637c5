package fca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Operations(t *testing.T) {
	a := NewSet(6, 0, 2, 4)
	b := NewSet(6, 2, 3)

	assert.Equal(t, []int{0, 2, 3, 4}, a.Union(b).Indices())
	assert.Equal(t, []int{2}, a.Intersect(b).Indices())
	assert.Equal(t, []int{0, 4}, a.Difference(b).Indices())
	assert.Equal(t, []int{0, 2, 4, 5}, a.With(5).Indices())
	assert.Equal(t, []int{0, 4}, a.Without(2).Indices())
	assert.Equal(t, 3, a.Count())
	assert.Equal(t, 4, a.Last())
	assert.Equal(t, -1, EmptySet(3).Last())
	assert.Equal(t, "{0,2,4}", a.String())
}

func TestSet_Immutable(t *testing.T) {
	a := NewSet(4, 1)
	_ = a.With(2)
	_ = a.Union(NewSet(4, 3))
	assert.Equal(t, []int{1}, a.Indices())
}

func TestSet_Predicates(t *testing.T) {
	a := NewSet(4, 1, 2)
	assert.True(t, NewSet(4, 1).IsSubsetOf(a))
	assert.True(t, NewSet(4, 1).IsProperSubsetOf(a))
	assert.True(t, a.IsSubsetOf(a))
	assert.False(t, a.IsProperSubsetOf(a))
	assert.False(t, NewSet(4, 0).IsSubsetOf(a))
	assert.True(t, a.Equal(NewSet(4, 2, 1)))
	assert.True(t, EmptySet(4).IsEmpty())
	assert.True(t, FullSet(4).IsFull())
	assert.False(t, a.Has(7))
	assert.Equal(t, a.Key(), NewSet(4, 1, 2).Key())
	assert.NotEqual(t, a.Key(), NewSet(4, 1, 3).Key())
}

func TestSet_CanonicalOrder(t *testing.T) {
	ordered := []Set{
		EmptySet(5),
		NewSet(5, 0),
		NewSet(5, 4),
		NewSet(5, 0, 1),
		NewSet(5, 0, 4),
		NewSet(5, 1, 2),
		NewSet(5, 0, 1, 2),
	}
	for i := range ordered {
		assert.Equal(t, 0, ordered[i].Compare(ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			assert.Equal(t, -1, ordered[i].Compare(ordered[j]), "%s < %s", ordered[i], ordered[j])
			assert.Equal(t, 1, ordered[j].Compare(ordered[i]))
		}
	}
}
