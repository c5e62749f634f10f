// This file declares the cursor interface shared by every iterator in
// the package, and the Collect helper for materializing sequences.

package scan

import "github.com/gamma-delta/aglet/core"

// Iterator is the minimal cursor contract: advance, then read. Every
// iterator in this package satisfies it, as does grid.Iter.
type Iterator interface {
	// Next advances to the next coordinate, reporting false when the
	// sequence is exhausted.
	Next() bool
	// Coord returns the current coordinate. Only valid after a Next
	// call that returned true.
	Coord() core.Coord
}

// Collect drains it into a slice. Feeding it an unbounded iterator
// (Ray) will not terminate; bound those with CollectN.
func Collect(it Iterator) []core.Coord {
	var out []core.Coord
	for it.Next() {
		out = append(out, it.Coord())
	}

	return out
}

// CollectN drains at most n coordinates from it.
func CollectN(it Iterator, n int) []core.Coord {
	out := make([]core.Coord, 0, n)
	for len(out) < n && it.Next() {
		out = append(out, it.Coord())
	}

	return out
}
