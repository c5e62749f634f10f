// This file implements Bresenham line rasterization. The stepping
// runs in a normalized octant where 0 <= dy <= dx, so the inner loop
// is one branch and one error update; endpoints are folded into that
// octant at construction and each output folded back out.

package scan

import "github.com/gamma-delta/aglet/core"

// LineIter walks the discrete straight segment between two
// coordinates, both endpoints included exactly once. Horizontal and
// vertical lines step one axis, 45° diagonals step both in lockstep,
// and a zero-length line yields its single point. The walk always has
// Chebyshev(from, to)+1 coordinates.
//
// Swapping the endpoints preserves the endpoints, length, and
// king-step adjacency of the walk, but not necessarily the exact
// cells: when the error term ties, this variant rounds toward its own
// start, so reverse(Line(a,b)) may differ from Line(b,a) off the
// tie-free (axis-aligned and perfect-diagonal) cases.
type LineIter struct {
	from, to core.Coord

	// Stepping state, in octant-0 space.
	oct  octant
	cur  core.Coord
	endX int
	dx   int
	dy   int
	diff int

	out core.Coord
}

// Line returns a cursor over the segment from one coordinate to
// another, inclusive.
// Complexity: O(1) construction, O(Chebyshev distance) full walk.
func Line(from, to core.Coord) *LineIter {
	it := &LineIter{from: from, to: to}
	it.Reset()

	return it
}

// Next advances one cell along the line, reporting false once the far
// endpoint has been produced.
func (it *LineIter) Next() bool {
	if it.cur.X > it.endX {
		return false
	}
	it.out = it.oct.unfold(it.cur)
	it.advance()

	return true
}

// advance performs one Bresenham step in octant-0 space: x always
// moves, y moves when the accumulated error crosses zero.
func (it *LineIter) advance() {
	if it.diff >= 0 {
		it.cur.Y++
		it.diff -= it.dx
	}
	it.diff += it.dy
	it.cur.X++
}

// Coord returns the current coordinate. Only valid after a Next call
// that returned true.
func (it *LineIter) Coord() core.Coord {
	return it.out
}

// Len returns the number of coordinates not yet produced.
func (it *LineIter) Len() int {
	if it.cur.X > it.endX {
		return 0
	}

	return it.endX - it.cur.X + 1
}

// Reset rewinds the cursor to the first endpoint.
func (it *LineIter) Reset() {
	it.oct = octantOf(it.from, it.to)
	start := it.oct.fold(it.from)
	end := it.oct.fold(it.to)
	it.cur = start
	it.endX = end.X
	it.dx = end.X - start.X
	it.dy = end.Y - start.Y
	it.diff = it.dy - it.dx
}

// octant identifies which of the eight half-quadrants around the
// start point the segment falls in. Folding a coordinate into octant
// 0 (where 0 <= dy <= dx) and unfolding it back are inverse sign and
// axis swaps.
type octant uint8

// octantOf classifies the segment from a to b.
func octantOf(a, b core.Coord) octant {
	d := b.Sub(a)
	var o octant
	if d.Y < 0 {
		d = d.Neg()
		o += 4
	}
	if d.X < 0 {
		d.X, d.Y = d.Y, -d.X
		o += 2
	}
	if d.X < d.Y {
		o++
	}

	return o
}

// fold maps p into octant-0 space.
func (o octant) fold(p core.Coord) core.Coord {
	switch o {
	case 0:
		return core.C(p.X, p.Y)
	case 1:
		return core.C(p.Y, p.X)
	case 2:
		return core.C(p.Y, -p.X)
	case 3:
		return core.C(-p.X, p.Y)
	case 4:
		return core.C(-p.X, -p.Y)
	case 5:
		return core.C(-p.Y, -p.X)
	case 6:
		return core.C(-p.Y, p.X)
	default:
		return core.C(p.X, -p.Y)
	}
}

// unfold is the inverse of fold.
func (o octant) unfold(p core.Coord) core.Coord {
	switch o {
	case 0:
		return core.C(p.X, p.Y)
	case 1:
		return core.C(p.Y, p.X)
	case 2:
		return core.C(-p.Y, p.X)
	case 3:
		return core.C(-p.X, p.Y)
	case 4:
		return core.C(-p.X, -p.Y)
	case 5:
		return core.C(-p.Y, -p.X)
	case 6:
		return core.C(p.Y, -p.X)
	default:
		return core.C(p.X, -p.Y)
	}
}
