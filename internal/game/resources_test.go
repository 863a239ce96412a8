package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcePoolAddAndSpend(t *testing.T) {
	pool := &ResourcePool{}

	pool.Add(3, 1)
	assert.Equal(t, 3, pool.Fear)
	assert.Equal(t, 1, pool.Belief)

	require.True(t, pool.Spend(2, 1))
	assert.Equal(t, 1, pool.Fear)
	assert.Equal(t, 0, pool.Belief)
}

func TestResourcePoolSpendIsAtomic(t *testing.T) {
	pool := &ResourcePool{Fear: 5, Belief: 0}

	// Enough fear, not enough belief: nothing is debited.
	require.False(t, pool.Spend(3, 1))
	assert.Equal(t, 5, pool.Fear)
	assert.Equal(t, 0, pool.Belief)

	// Exact spend succeeds.
	require.True(t, pool.Spend(5, 0))
	assert.Equal(t, 0, pool.Fear)
}

func TestInstabilityTracksImbalance(t *testing.T) {
	pool := &ResourcePool{}
	assert.Equal(t, 0, pool.Instability())

	pool.Add(4, 1)
	assert.Equal(t, 3, pool.Instability())

	pool.Add(0, 5)
	assert.Equal(t, 2, pool.Instability())

	require.True(t, pool.Spend(4, 0))
	assert.Equal(t, 6, pool.Instability())
}

func TestDescribeIncludesInstability(t *testing.T) {
	pool := &ResourcePool{Fear: 2, Belief: 5}
	assert.Equal(t, "Fear: 2, Belief: 5, Instability: 3", pool.Describe())
}
