package fca

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_AcceptsMinedResults(t *testing.T) {
	for seed := int64(30); seed < 36; seed++ {
		c := randomContext(t, seed, 12, 7, 0.5)
		r, err := Mine(context.Background(), c, Options{})
		require.NoError(t, err)
		assert.NoError(t, Verify(c, r), "seed %d", seed)
	}
}

func TestVerify_DetectsNonMinimalKey(t *testing.T) {
	c := abcContext(t)
	r := mine(t, c)
	// {a,b} closes to {a,b} but {a} already does.
	idx, ok := r.Enumeration.IntentIndex(NewSet(3, 0, 1))
	require.True(t, ok)
	r.Enumeration.Keys[idx] = append(r.Enumeration.Keys[idx], NewSet(3, 0, 1))

	err := Verify(c, r)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "not minimal")
}

func TestVerify_DetectsBadPseudoIntent(t *testing.T) {
	c := newZealandContext(t)
	r := mine(t, c)
	// {4} is not closed under ∅ → {0}.
	r.PseudoIntents = append(r.PseudoIntents, newImplication(NewSet(5, 4), NewSet(5, 0, 1, 3), NewSet(5, 0, 1, 3, 4), NewSet(13, 11, 12)))

	err := Verify(c, r)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
}

func TestMine_NilContext(t *testing.T) {
	_, err := Mine(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
