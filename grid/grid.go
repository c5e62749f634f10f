// This file implements the Grid constructors and the O(1) point
// operations: Get, At, Insert, Remove, GetOrInsert.

package grid

import (
	"fmt"

	"github.com/gamma-delta/aglet/core"
)

// New constructs an empty Grid whose key domain is exactly bounds.
// The dense store of Width×Height cells is allocated up front, all
// empty. Zero-size bounds are a valid (if useless without growth)
// empty domain; negative dimensions yield ErrInvalidBounds.
// Complexity: O(Width×Height) time and memory.
func New[T any](bounds core.Rect, opts ...Option) (*Grid[T], error) {
	if bounds.Width < 0 || bounds.Height < 0 {
		return nil, fmt.Errorf("%s: %w", bounds, ErrInvalidBounds)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid[T]{
		bounds:   bounds,
		cells:    make([]cell[T], bounds.Width*bounds.Height),
		autoGrow: cfg.autoGrow,
	}, nil
}

// FromRows constructs a fully-occupied Grid from a rectangular 2-D
// slice, anchored at origin: rows[y][x] lands on
// (origin.X+x, origin.Y+y). Values are copied by assignment; the
// input slice is not retained. Returns ErrRaggedRows when row lengths
// differ. An empty rows slice yields an empty zero-size grid.
// Complexity: O(Width×Height).
func FromRows[T any](origin core.Coord, rows [][]T, opts ...Option) (*Grid[T], error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
	}

	g, err := New[T](core.NewRect(origin, width, height), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			g.cells[y*width+x] = cell[T]{value: v, occupied: true}
		}
	}
	g.length = width * height

	return g, nil
}

// Get returns the occupant of c. The second result is false when c is
// outside bounds or empty; out-of-bounds lookups are absence, never
// an error.
// Complexity: O(1).
func (g *Grid[T]) Get(c core.Coord) (T, bool) {
	if idx, ok := g.index(c); ok && g.cells[idx].occupied {
		return g.cells[idx].value, true
	}
	var zero T

	return zero, false
}

// At returns a pointer to the occupant of c for in-place mutation,
// or nil when c is absent. The pointer stays valid until the next
// Resize or Grow (including one triggered by an auto-growing Insert).
// Complexity: O(1).
func (g *Grid[T]) At(c core.Coord) *T {
	if idx, ok := g.index(c); ok && g.cells[idx].occupied {
		return &g.cells[idx].value
	}

	return nil
}

// Insert stores v at c, returning the previous occupant if one was
// replaced. When c is outside bounds: without growth the grid is left
// untouched and err wraps ErrOutOfBounds; with WithAutoGrow the
// bounds grow to the minimal rectangle enclosing c first.
// Complexity: O(1); O(area) when growth reallocates.
func (g *Grid[T]) Insert(c core.Coord, v T) (prev T, replaced bool, err error) {
	idx, ok := g.index(c)
	if !ok {
		if !g.autoGrow {
			return prev, false, fmt.Errorf("insert at %s: %w", c, ErrOutOfBounds)
		}
		if err = g.Grow(core.NewRect(c, 1, 1)); err != nil {
			return prev, false, err
		}
		idx, _ = g.index(c)
	}

	slot := &g.cells[idx]
	prev, replaced = slot.value, slot.occupied
	slot.value, slot.occupied = v, true
	if !replaced {
		g.length++
	}

	return prev, replaced, nil
}

// Remove clears the cell at c, returning the removed value. Absence
// (out of bounds or already empty) is not an error: the result is
// the zero value and false.
// Complexity: O(1).
func (g *Grid[T]) Remove(c core.Coord) (T, bool) {
	var zero T
	idx, ok := g.index(c)
	if !ok || !g.cells[idx].occupied {
		return zero, false
	}

	out := g.cells[idx].value
	g.cells[idx] = cell[T]{}
	g.length--

	return out, true
}

// GetOrInsert returns a pointer to the occupant of c, inserting v
// first if c is empty. Bounds and growth behave as in Insert.
func (g *Grid[T]) GetOrInsert(c core.Coord, v T) (*T, error) {
	return g.GetOrInsertFunc(c, func() T { return v })
}

// GetOrInsertFunc is GetOrInsert with a lazily-evaluated fallback:
// fn runs only when c is empty.
func (g *Grid[T]) GetOrInsertFunc(c core.Coord, fn func() T) (*T, error) {
	if p := g.At(c); p != nil {
		return p, nil
	}
	if _, _, err := g.Insert(c, fn()); err != nil {
		return nil, err
	}

	return g.At(c), nil
}
