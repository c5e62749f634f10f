// This file declares the Grid type, its cell representation, and the
// sentinel errors of the package.

package grid

import (
	"errors"

	"github.com/gamma-delta/aglet/core"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidBounds indicates a bounding rectangle with negative
	// dimensions was supplied to New or Resize.
	ErrInvalidBounds = errors.New("grid: bounds must have non-negative dimensions")

	// ErrOutOfBounds indicates a coordinate outside the grid's
	// bounding rectangle where the operation required one inside it.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrRaggedRows indicates FromRows received rows of differing
	// lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
)

// cell is one slot of the dense store. The occupied flag
// distinguishes "holds the zero value of T" from "empty", so T needs
// no reserved sentinel value.
type cell[T any] struct {
	value    T
	occupied bool
}

// Grid is an associative container from core.Coord to T over a
// bounded dense store. The bounding rectangle is the exclusive domain
// of valid keys: coordinates outside it are absent by definition.
//
// The zero Grid is not usable; construct with New or FromRows. A Grid
// exclusively owns its stored values and performs no internal
// synchronization.
type Grid[T any] struct {
	bounds   core.Rect
	cells    []cell[T]
	length   int
	autoGrow bool
}

// Len returns the number of occupied cells.
// Complexity: O(1).
func (g *Grid[T]) Len() int {
	return g.length
}

// Bounds returns the bounding rectangle that is the grid's current
// key domain.
// Complexity: O(1).
func (g *Grid[T]) Bounds() core.Rect {
	return g.bounds
}

// InBounds reports whether c is inside the key domain. A coordinate
// in bounds may still be empty; see Contains for occupancy.
func (g *Grid[T]) InBounds(c core.Coord) bool {
	return g.bounds.Contains(c)
}

// Contains reports whether c is occupied.
// Complexity: O(1).
func (g *Grid[T]) Contains(c core.Coord) bool {
	idx, ok := g.index(c)

	return ok && g.cells[idx].occupied
}

// index resolves c to its offset in the dense store, reporting false
// when c is outside the bounding rectangle.
func (g *Grid[T]) index(c core.Coord) (int, bool) {
	if !g.bounds.Contains(c) {
		return 0, false
	}

	return (c.X - g.bounds.Origin.X) + (c.Y-g.bounds.Origin.Y)*g.bounds.Width, true
}

// coordAt is the inverse of index: the world coordinate of store
// offset idx.
func (g *Grid[T]) coordAt(idx int) core.Coord {
	return core.Coord{
		X: g.bounds.Origin.X + idx%g.bounds.Width,
		Y: g.bounds.Origin.Y + idx/g.bounds.Width,
	}
}
