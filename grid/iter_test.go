package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/aglet/core"
	"github.com/gamma-delta/aglet/grid"
)

// collect drains a cursor into coordinate and value slices.
func collect(it *grid.Iter[int]) ([]core.Coord, []int) {
	var cs []core.Coord
	var vs []int
	for it.Next() {
		cs = append(cs, it.Coord())
		vs = append(vs, *it.Value())
	}

	return cs, vs
}

// TestIter_RowMajorOrder verifies occupied cells come out in store
// scan order regardless of insertion order.
func TestIter_RowMajorOrder(t *testing.T) {
	g, err := grid.New[int](core.NewRect(core.C(10, 20), 3, 3))
	require.NoError(t, err)

	// Insert in scrambled order.
	for i, c := range []core.Coord{
		core.C(12, 22), core.C(10, 20), core.C(11, 21), core.C(12, 20),
	} {
		_, _, err = g.Insert(c, i)
		require.NoError(t, err)
	}

	cs, vs := collect(g.Iter())
	assert.Equal(t, []core.Coord{
		core.C(10, 20), core.C(12, 20), core.C(11, 21), core.C(12, 22),
	}, cs)
	assert.Equal(t, []int{1, 3, 2, 0}, vs)
}

// TestIter_EmptyAndRestart covers the empty grid, Reset, and the
// fresh-cursor restart guarantee.
func TestIter_EmptyAndRestart(t *testing.T) {
	g, err := grid.New[int](core.NewRect(core.C(0, 0), 4, 4))
	require.NoError(t, err)

	it := g.Iter()
	assert.False(t, it.Next(), "empty grid yields nothing")

	_, _, err = g.Insert(core.C(2, 2), 9)
	require.NoError(t, err)

	it = g.Iter()
	cs, _ := collect(it)
	require.Len(t, cs, 1)
	assert.False(t, it.Next(), "exhausted cursor stays exhausted")

	it.Reset()
	cs, _ = collect(it)
	assert.Len(t, cs, 1, "Reset re-scans")
}

// TestIter_ValueWrite mutates cells through the cursor, the one
// mutation allowed mid-iteration.
func TestIter_ValueWrite(t *testing.T) {
	g, err := grid.FromRows(core.C(0, 0), [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	for it := g.Iter(); it.Next(); {
		*it.Value() *= 10
	}

	v, _ := g.Get(core.C(1, 1))
	assert.Equal(t, 40, v)
	assert.Equal(t, 4, g.Len())
}
