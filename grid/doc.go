// Package grid provides Grid[T], a coordinate-keyed container backed
// by a bounded dense store — like a map[core.Coord]T, but faster.
//
// What:
//
//   - Grid[T] maps core.Coord keys to values of any type T inside an
//     explicit bounding rectangle (its key domain).
//   - The store is one flat slice of Width×Height cells in row-major
//     order; a key resolves to offset (x-Origin.X) + (y-Origin.Y)*Width,
//     so Get/Insert/Remove are pure arithmetic — no hashing.
//   - Iter walks the occupied cells lazily in store (row-major) order.
//   - Resize and Grow reallocate the store and remap entries; with
//     WithAutoGrow, an out-of-bounds Insert grows the domain instead of
//     failing.
//
// Why:
//
//   - Tile maps: the working set is a bounded, near-dense region, and
//     point lookups dominate; offset arithmetic beats hashing there.
//   - Determinism: iteration order is the store scan order, stable
//     across runs, so tests and replays stay reproducible.
//
// Complexity:
//
//   - Get/At/Insert/Remove/Len/Bounds: O(1).
//   - Iter over all cells: O(Width×Height).
//   - Resize/Grow (and auto-growing Insert): O(Width×Height) realloc.
//
// Options:
//
//   - WithAutoGrow: out-of-bounds Insert grows the bounds to the
//     minimal enclosing rectangle instead of returning ErrOutOfBounds.
//
// Errors:
//
//   - ErrInvalidBounds: construction or Resize given negative
//     dimensions.
//   - ErrOutOfBounds: Insert outside the domain without growth, or a
//     Resize that would drop an occupied cell. The failed operation
//     never mutates the grid.
//   - ErrRaggedRows: FromRows given rows of differing lengths.
//
// A Grid performs no internal locking: it has a single writer and the
// caller serializes access. Mutating a Grid while one of its iterators
// is live (other than writing through Iter.Value) is forbidden.
package grid
