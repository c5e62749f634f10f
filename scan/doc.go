// Package scan provides the coordinate iterators of aglet: rectangle
// areas, rectangle perimeters, and discrete straight lines.
//
// What:
//
//   - Area walks every coordinate inside a core.Rect in row-major
//     order (y outer, x inner, ascending).
//   - Edges walks a rectangle's perimeter exactly once, clockwise from
//     the top-left corner; thin and empty rectangles degenerate
//     cleanly (no duplicate corners, never an error).
//   - Line walks the Bresenham rasterization of the segment between
//     two coordinates, both endpoints included exactly once.
//   - Ray is Line without an endpoint: it steps along the same
//     trajectory forever, for line-of-sight probes the caller bounds.
//
// Why:
//
//   - Area: room fills, fog-of-war reveals, damage zones.
//   - Edges: walls, borders, spawn rings.
//   - Line/Ray: line of sight, projectile paths, laser beams.
//
// All iterators share one cursor idiom: construct, then
//
//	for it.Next() {
//	    c := it.Coord()
//	}
//
// They are lazy, deterministic, restartable via Reset, and allocate
// nothing after construction. The finite ones (Area, Edges, Line)
// report the remaining count via Len. The fixed traversal orders are
// contracts: golden tests may rely on them byte-for-byte.
//
// Complexity: O(1) per step, O(k) for a full walk of k coordinates.
package scan
