package fca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext_RejectsInconsistentWidths(t *testing.T) {
	_, err := NewContext([]Set{NewSet(3, 0), NewSet(4, 1)}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "object 1")
}

func TestNewContextFromIndices_RejectsUnknownAttribute(t *testing.T) {
	_, err := NewContextFromIndices([][]int{{0, 3}}, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContext_ExtentAndIntent(t *testing.T) {
	c := abcContext(t)

	assert.Equal(t, []int{0, 1}, c.Extent(NewSet(3, 1)).Indices())
	assert.Equal(t, []int{0}, c.Extent(NewSet(3, 0)).Indices())
	assert.Empty(t, c.Extent(NewSet(3, 0, 2)).Indices())
	assert.Equal(t, []int{1}, c.Intent(FullSet(2)).Indices())
	// No object qualifies: the closure is the whole universe.
	assert.Equal(t, []int{0, 1, 2}, c.Intent(EmptySet(2)).Indices())
	assert.Equal(t, []int{0, 1, 2}, c.Closure(NewSet(3, 0, 2)).Indices())
	assert.Equal(t, 2, c.Support(EmptySet(3)))
}

func TestContext_ClosureProperties(t *testing.T) {
	for _, c := range []*Context{abcContext(t), fiveAttrContext(t), newZealandContext(t), randomContext(t, 7, 12, 6, 0.4)} {
		subsets := allSubsets(c.NumAttributes())
		for _, x := range subsets {
			cx := c.Closure(x)
			assert.True(t, x.IsSubsetOf(cx), "extensive: %s", x)
			assert.True(t, c.Closure(cx).Equal(cx), "idempotent: %s", x)
			for _, y := range subsets {
				if x.IsSubsetOf(y) {
					assert.True(t, cx.IsSubsetOf(c.Closure(y)), "monotone: %s ⊆ %s", x, y)
				}
			}
		}
	}
}

func TestContext_Degenerate(t *testing.T) {
	noObjects, err := NewContext(nil, 3)
	require.NoError(t, err)
	assert.True(t, noObjects.IsDegenerate())
	assert.Equal(t, []int{0, 1, 2}, noObjects.Closure(EmptySet(3)).Indices())

	noAttrs, err := NewContextFromIndices([][]int{{}, {}}, 0)
	require.NoError(t, err)
	assert.True(t, noAttrs.IsDegenerate())
	assert.True(t, noAttrs.Closure(EmptySet(0)).IsEmpty())
}
