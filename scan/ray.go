// This file implements the unbounded line variant.

package scan

import "github.com/gamma-delta/aglet/core"

// RayIter steps along the Bresenham trajectory from an origin through
// a second coordinate and keeps going: Next never reports false. The
// caller bounds the walk — stop at the first wall, cap with CollectN,
// break out of the loop. The degenerate ray toward its own origin
// repeats the origin forever.
type RayIter struct {
	from, toward core.Coord

	oct   octant
	cur   core.Coord
	dx    int
	dy    int
	diff  int
	fixed bool // zero-length trajectory: emit from forever

	out core.Coord
}

// Ray returns an unbounded cursor from one coordinate through
// another. The first Chebyshev(from, toward)+1 coordinates match
// Line(from, toward) exactly; after that the same stepping continues
// past the far point.
func Ray(from, toward core.Coord) *RayIter {
	it := &RayIter{from: from, toward: toward}
	it.Reset()

	return it
}

// Next advances one cell along the trajectory. Always true.
func (it *RayIter) Next() bool {
	if it.fixed {
		it.out = it.from

		return true
	}
	it.out = it.oct.unfold(it.cur)
	if it.diff >= 0 {
		it.cur.Y++
		it.diff -= it.dx
	}
	it.diff += it.dy
	it.cur.X++

	return true
}

// Coord returns the current coordinate. Only valid after Next.
func (it *RayIter) Coord() core.Coord {
	return it.out
}

// Reset rewinds the cursor to the origin.
func (it *RayIter) Reset() {
	it.fixed = it.from == it.toward
	if it.fixed {
		return
	}
	it.oct = octantOf(it.from, it.toward)
	start := it.oct.fold(it.from)
	end := it.oct.fold(it.toward)
	it.cur = start
	it.dx = end.X - start.X
	it.dy = end.Y - start.Y
	it.diff = it.dy - it.dx
}
