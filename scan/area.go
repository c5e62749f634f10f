// This file implements the row-major area iterator.

package scan

import "github.com/gamma-delta/aglet/core"

// AreaIter walks every coordinate inside a rectangle in row-major
// order: y outer, x inner, both ascending. The walk visits exactly
// Area() coordinates; an empty rectangle yields an empty sequence.
// This fixed order is a contract — Edges delegates its thin cases to
// it, and deterministic tests may rely on it.
type AreaIter struct {
	rect   core.Rect
	total  int
	cursor int
	out    core.Coord
}

// Area returns a cursor over every coordinate inside r.
// Complexity: O(1) construction, O(Width×Height) full walk.
func Area(r core.Rect) *AreaIter {
	return &AreaIter{rect: r, total: r.Area()}
}

// Next advances to the next coordinate in the scan, reporting false
// once all Width×Height coordinates have been produced.
func (it *AreaIter) Next() bool {
	if it.cursor >= it.total {
		return false
	}
	it.out = it.rect.Origin.Add(core.C(it.cursor%it.rect.Width, it.cursor/it.rect.Width))
	it.cursor++

	return true
}

// Coord returns the current coordinate. Only valid after a Next call
// that returned true.
func (it *AreaIter) Coord() core.Coord {
	return it.out
}

// Len returns the number of coordinates not yet produced.
func (it *AreaIter) Len() int {
	return it.total - it.cursor
}

// Reset rewinds the cursor to the start of the scan.
func (it *AreaIter) Reset() {
	it.cursor = 0
}
