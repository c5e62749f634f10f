// This file implements the perimeter iterator. The walk is cursor
// arithmetic over four segments rather than stateful turtle movement,
// which keeps Reset and Len trivial.

package scan

import "github.com/gamma-delta/aglet/core"

// EdgesIter walks the perimeter of a rectangle, each coordinate
// exactly once, clockwise starting at the top-left corner: top row
// left→right, right column downward, bottom row right→left, left
// column upward. Degenerate rectangles stay duplicate-free: a single
// row or column is walked once in area order, an empty rectangle
// yields nothing.
type EdgesIter struct {
	rect   core.Rect
	total  int
	thin   bool // single row or column: delegate to the area scan
	cursor int
	out    core.Coord
}

// Edges returns a cursor over the perimeter of r. The walk has
// 2w+2h-4 coordinates for w,h ≥ 2, w·h for thin rectangles, 0 for
// empty ones.
// Complexity: O(1) construction, O(perimeter) full walk.
func Edges(r core.Rect) *EdgesIter {
	it := &EdgesIter{rect: r}
	switch {
	case r.Empty():
		it.total = 0
	case r.Width == 1 || r.Height == 1:
		it.thin = true
		it.total = r.Area()
	default:
		it.total = 2*r.Width + 2*r.Height - 4
	}

	return it
}

// Next advances along the perimeter, reporting false once the walk
// closes.
func (it *EdgesIter) Next() bool {
	if it.cursor >= it.total {
		return false
	}
	it.out = it.rect.Origin.Add(it.offset(it.cursor))
	it.cursor++

	return true
}

// offset maps a walk position to its origin-relative coordinate.
func (it *EdgesIter) offset(cur int) core.Coord {
	w, h := it.rect.Width, it.rect.Height
	if it.thin {
		return core.C(cur%w, cur/w)
	}
	switch {
	case cur < w: // top row, left to right
		return core.C(cur, 0)
	case cur < w+h-1: // right column, downward
		return core.C(w-1, cur-w+1)
	case cur < 2*w+h-2: // bottom row, right to left
		return core.C(w-(cur+3-w-h), h-1)
	default: // left column, upward
		return core.C(0, h-(cur+4-h-2*w))
	}
}

// Coord returns the current coordinate. Only valid after a Next call
// that returned true.
func (it *EdgesIter) Coord() core.Coord {
	return it.out
}

// Len returns the number of coordinates not yet produced.
func (it *EdgesIter) Len() int {
	return it.total - it.cursor
}

// Reset rewinds the cursor to the top-left corner.
func (it *EdgesIter) Reset() {
	it.cursor = 0
}
