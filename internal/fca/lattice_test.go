package fca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLattice_TwoObjects(t *testing.T) {
	r := mine(t, abcContext(t))
	cs := r.Lattice.Concepts
	require.Len(t, cs, 4)

	var intents, extents, newExtents, newIntents [][]int
	var supports, previous, next, subs, sups []any
	for _, c := range cs {
		intents = append(intents, c.Intent.Indices())
		extents = append(extents, c.Extent.Indices())
		newExtents = append(newExtents, c.NewExtent.Indices())
		newIntents = append(newIntents, c.NewIntent.Indices())
		supports = append(supports, c.Support)
		previous = append(previous, c.Previous)
		next = append(next, c.Next)
		subs = append(subs, c.SubConcepts)
		sups = append(sups, c.SuperConcepts)
	}

	assert.Equal(t, [][]int{{1}, {0, 1}, {1, 2}, {0, 1, 2}}, intents)
	assert.Equal(t, [][]int{{0, 1}, {0}, {1}, {}}, extents)
	assert.Equal(t, [][]int{{}, {0}, {1}, {}}, newExtents)
	assert.Equal(t, [][]int{{1}, {0}, {2}, {}}, newIntents)
	assert.Equal(t, []any{2, 1, 1, 0}, supports)
	assert.Equal(t, []any{[]int{1, 2}, []int{3}, []int{3}, []int(nil)}, previous)
	assert.Equal(t, []any{[]int(nil), []int{0}, []int{0}, []int{1, 2}}, next)
	assert.Equal(t, []any{[]int{1, 2, 3}, []int{3}, []int{3}, []int{}}, subs)
	assert.Equal(t, []any{[]int{}, []int{0}, []int{0}, []int{0, 1, 2}}, sups)
}

func TestBuildLattice_OrderIsConsistent(t *testing.T) {
	c := randomContext(t, 21, 14, 7, 0.45)
	l := mine(t, c).Lattice

	for i, ci := range l.Concepts {
		assert.Equal(t, i, ci.Index)
		if i > 0 {
			prev := l.Concepts[i-1]
			assert.True(t, prev.Support > ci.Support ||
				(prev.Support == ci.Support && prev.Intent.Compare(ci.Intent) < 0),
				"linear extension broken at %d", i)
		}
		for j, cj := range l.Concepts {
			if i == j {
				continue
			}
			below := cj.Extent.IsProperSubsetOf(ci.Extent)
			assert.Equal(t, below, l.IsSubconcept(j, i), "%d below %d", j, i)
			assert.Equal(t, below, ci.Intent.IsProperSubsetOf(cj.Intent))
			assert.Equal(t, below, contains(cj.SuperConcepts, i), "inverse relation %d %d", i, j)
		}
		for _, p := range ci.Previous {
			assert.Contains(t, l.Concepts[p].Next, i)
			for _, k := range ci.SubConcepts {
				assert.False(t, l.IsSubconcept(p, k), "%d is not a cover of %d", p, i)
			}
		}
	}
}

func TestBuildLattice_SingleConcept(t *testing.T) {
	c, err := NewContextFromIndices([][]int{{}, {}}, 0)
	require.NoError(t, err)
	r := mine(t, c)
	require.Len(t, r.Lattice.Concepts, 1)
	assert.Equal(t, 2, r.Lattice.Concepts[0].Support)
	assert.Empty(t, r.ProperPremises)
	assert.Empty(t, r.PseudoIntents)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
