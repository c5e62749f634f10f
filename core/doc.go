// Package core defines the data model every other aglet package keys on:
// Coord, Rect, Direction, and DirSet.
//
// What:
//
//   - Coord is a 2-D integer point with vector arithmetic (add, scale,
//     component-wise min/max, Manhattan/Chebyshev distance). It is a
//     comparable value type, so it works directly as a Go map key.
//   - Rect is an axis-aligned bounding rectangle: an origin plus a
//     width and height, spanning the half-open ranges
//     x ∈ [Origin.X, Origin.X+Width), y ∈ [Origin.Y, Origin.Y+Height).
//   - Direction is a closed 8-way compass enum, clockwise from North,
//     each variant mapping to exactly one unit Coord offset.
//   - DirSet is a bitmask over the 8 directions, for adjacency masks
//     and autotiling.
//
// Why:
//
//   - Tile games: positions, neighbor lookups, facing and turning.
//   - Grid containers: Coord is the key type of grid.Grid, Rect is its
//     key domain.
//   - Traversal: scan's iterators produce Coord sequences and take Rect
//     inputs.
//
// Conventions:
//
//   - Screen orientation: +Y grows downward, so North offsets to (0,-1)
//     and the compass runs clockwise N, NE, E, SE, S, SW, W, NW.
//   - Overflow wraps (two's complement at Go's int width). No operation
//     panics, allocates, or performs I/O; everything here is pure.
//
// Errors:
//
//	ErrUnknownDirection - ParseDirection/UnmarshalText got a name
//	                      outside the closed variant set.
package core
