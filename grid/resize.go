// This file implements the explicit reallocation operations: Resize,
// Grow, and Clone. Growth is never implicit — Insert only triggers it
// under WithAutoGrow, and then through the same Grow path.

package grid

import (
	"fmt"

	"github.com/gamma-delta/aglet/core"
)

// Resize reallocates the dense store for a new bounding rectangle and
// remaps every occupied cell to its unchanged world coordinate.
// Fails with ErrInvalidBounds for negative dimensions, and with a
// wrapped ErrOutOfBounds naming the first occupied cell (in store
// order) the new bounds would drop. On failure the grid is unchanged.
// Complexity: O(old area + new area).
func (g *Grid[T]) Resize(bounds core.Rect) error {
	if bounds.Width < 0 || bounds.Height < 0 {
		return fmt.Errorf("%s: %w", bounds, ErrInvalidBounds)
	}
	for idx := range g.cells {
		if g.cells[idx].occupied && !bounds.Contains(g.coordAt(idx)) {
			return fmt.Errorf("resize to %s drops occupied cell %s: %w",
				bounds, g.coordAt(idx), ErrOutOfBounds)
		}
	}

	next := Grid[T]{
		bounds:   bounds,
		cells:    make([]cell[T], bounds.Width*bounds.Height),
		autoGrow: g.autoGrow,
	}
	for idx := range g.cells {
		if !g.cells[idx].occupied {
			continue
		}
		nidx, _ := next.index(g.coordAt(idx))
		next.cells[nidx] = g.cells[idx]
	}
	next.length = g.length
	*g = next

	return nil
}

// Grow resizes to the union of the current bounds and r: existing
// keys always survive, so Grow never drops cells. Growing by an empty
// or already-contained rectangle is a no-op.
func (g *Grid[T]) Grow(r core.Rect) error {
	union := g.bounds.Union(r)
	if union == g.bounds {
		return nil
	}

	return g.Resize(union)
}

// Clone returns a deep copy of the grid: same bounds, same options,
// values copied by assignment.
// Complexity: O(area).
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		bounds:   g.bounds,
		cells:    make([]cell[T], len(g.cells)),
		length:   g.length,
		autoGrow: g.autoGrow,
	}
	copy(out.cells, g.cells)

	return out
}
