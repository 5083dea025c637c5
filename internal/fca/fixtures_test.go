package fca

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// abcContext is g1 ↦ {a,b}, g2 ↦ {b,c} with a=0, b=1, c=2.
func abcContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContextFromIndices([][]int{{0, 1}, {1, 2}}, 3)
	require.NoError(t, err)
	return c
}

// fiveAttrContext has exactly the intents
// {}, {0}, {2}, {3}, {0,2}, {0,3}, {1,2}, {1,2,3}, {0,1,2,3,4}.
func fiveAttrContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContextFromIndices([][]int{
		{}, {0}, {2}, {3}, {0, 2}, {0, 3}, {1, 2}, {1, 2, 3}, {0, 1, 2, 3, 4},
	}, 5)
	require.NoError(t, err)
	return c
}

// New Zealand holiday destinations with duplicated objects.
// Attributes: 0 Hiking, 1 Jet Boating, 2 Observing Nature,
// 3 Sightseeing Flights, 4 Wildwater Rafting.
func newZealandContext(t *testing.T) *Context {
	t.Helper()
	var rows [][]int
	for i := 0; i < 6; i++ { // Stewart Island and 5 copies
		rows = append(rows, []int{0, 2, 3})
	}
	rows = append(rows, []int{0, 1, 2, 3}) // Te Anau
	for i := 0; i < 4; i++ {              // Oamaru and 3 copies
		rows = append(rows, []int{0, 2})
	}
	for i := 0; i < 2; i++ { // Queenstown and Wanaka
		rows = append(rows, []int{0, 1, 3, 4})
	}
	c, err := NewContextFromIndices(rows, 5)
	require.NoError(t, err)
	return c
}

func randomContext(t *testing.T, seed int64, objects, attrs int, density float64) *Context {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, objects)
	for g := range rows {
		for a := 0; a < attrs; a++ {
			if rng.Float64() < density {
				rows[g] = append(rows[g], a)
			}
		}
	}
	c, err := NewContextFromIndices(rows, attrs)
	require.NoError(t, err)
	return c
}

func mine(t *testing.T, c *Context) *Result {
	t.Helper()
	r, err := Mine(context.Background(), c, Options{Workers: 2, Verify: true})
	require.NoError(t, err)
	return r
}

func indices(sets []Set) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = s.Indices()
	}
	return out
}

func premises(impls []Implication) [][]int {
	out := make([][]int, len(impls))
	for i, im := range impls {
		out[i] = im.Premise.Indices()
	}
	return out
}

// allSubsets returns every subset of [0, n) in canonical order.
func allSubsets(n int) []Set {
	var out []Set
	for size := 0; size <= n; size++ {
		forEachCombination(n, size, func(idx []int) {
			out = append(out, NewSet(n, idx...))
		})
	}
	return out
}
