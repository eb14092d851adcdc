package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublevel/persistence"
)

// TestDisjointSet_Basics covers Add/Find/Contains on a fresh set.
func TestDisjointSet_Basics(t *testing.T) {
	d := persistence.NewDisjointSet(4)
	assert.Zero(t, d.Len())
	assert.Equal(t, -1, d.Find(0), "not yet added")
	assert.False(t, d.Contains(0))

	require.True(t, d.Add(0, 3))
	require.True(t, d.Add(1, 1))
	assert.True(t, d.Add(1, 99), "re-adding is a no-op")
	assert.False(t, d.Add(4, 0), "out of range")
	assert.False(t, d.Add(-1, 0), "out of range")

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 0, d.Find(0))
	b, ok := d.Birth(1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, b, "re-add must not overwrite the birth")

	_, ok = d.Birth(3)
	assert.False(t, ok)
}

// TestDisjointSet_UnionElder checks that the elder root survives.
func TestDisjointSet_UnionElder(t *testing.T) {
	d := persistence.NewDisjointSet(3)
	d.Add(0, 5)
	d.Add(1, 2)
	d.Add(2, 2)

	survivor, dead, merged := d.Union(0, 1)
	assert.True(t, merged)
	assert.Equal(t, 1, survivor, "birth 2 is older than birth 5")
	assert.Equal(t, 0, dead)

	// Equal births: the one added first (vertex 1) survives.
	survivor, dead, merged = d.Union(2, 0)
	assert.True(t, merged)
	assert.Equal(t, 1, survivor)
	assert.Equal(t, 2, dead)

	_, _, merged = d.Union(0, 2)
	assert.False(t, merged, "already connected")
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []int{1}, d.Sets())

	b, _ := d.Birth(0)
	assert.Equal(t, 2.0, b)
}

// TestDisjointSet_Missing verifies Union on elements that were never added.
func TestDisjointSet_Missing(t *testing.T) {
	d := persistence.NewDisjointSet(2)
	d.Add(0, 0)
	s, dead, merged := d.Union(0, 1)
	assert.False(t, merged)
	assert.Equal(t, -1, s)
	assert.Equal(t, -1, dead)

	empty := persistence.NewDisjointSet(-3)
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.Sets())
}

// TestDisjointSet_LongChain exercises path compression on a deep chain.
func TestDisjointSet_LongChain(t *testing.T) {
	const n = 1000
	d := persistence.NewDisjointSet(n)
	for i := 0; i < n; i++ {
		d.Add(i, float64(i))
	}
	for i := 1; i < n; i++ {
		_, _, merged := d.Union(i-1, i)
		require.True(t, merged)
	}
	assert.Equal(t, 1, d.Len())
	for i := 0; i < n; i++ {
		assert.Equal(t, 0, d.Find(i))
	}
}
