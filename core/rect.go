// This file declares Rect, the axis-aligned bounding rectangle used as
// the key domain of grid.Grid and as the input of scan.Area/scan.Edges.

package core

import "fmt"

// Rect is an axis-aligned rectangle anchored at Origin, spanning the
// half-open ranges x ∈ [Origin.X, Origin.X+Width) and
// y ∈ [Origin.Y, Origin.Y+Height). A Rect with Width <= 0 or
// Height <= 0 is empty and contains no coordinates.
type Rect struct {
	Origin        Coord
	Width, Height int
}

// NewRect constructs a Rect from an origin corner plus dimensions.
func NewRect(origin Coord, width, height int) Rect {
	return Rect{Origin: origin, Width: width, Height: height}
}

// RectOf constructs the Rect spanning two opposite corner bounds,
// normalized so the component-wise minimum becomes the inclusive
// Origin and the maximum the exclusive far corner, like image.Rect.
func RectOf(a, b Coord) Rect {
	lo, hi := a.Min(b), a.Max(b)

	return Rect{Origin: lo, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Contains reports whether c lies inside r.
// Complexity: O(1).
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Origin.X && c.X < r.Origin.X+r.Width &&
		c.Y >= r.Origin.Y && c.Y < r.Origin.Y+r.Height
}

// Empty reports whether r contains no coordinates.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of coordinates inside r; 0 when empty.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}

	return r.Width * r.Height
}

// Max returns the exclusive far corner of r,
// Origin + (Width, Height).
func (r Rect) Max() Coord {
	return Coord{X: r.Origin.X + r.Width, Y: r.Origin.Y + r.Height}
}

// Union returns the smallest Rect containing both r and s. An empty
// rectangle contributes nothing, so the union with it is the other
// operand unchanged.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	lo := r.Origin.Min(s.Origin)
	hi := r.Max().Max(s.Max())

	return Rect{Origin: lo, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Intersect returns the largest Rect contained in both r and s.
// Disjoint inputs produce an empty Rect (never negative beyond the
// empty test: callers must check Empty, not the raw dimensions).
func (r Rect) Intersect(s Rect) Rect {
	lo := r.Origin.Max(s.Origin)
	hi := r.Max().Min(s.Max())

	return Rect{Origin: lo, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// String renders r as "origin+WxH", e.g. "(2, 3)+4x5".
func (r Rect) String() string {
	return fmt.Sprintf("%s+%dx%d", r.Origin, r.Width, r.Height)
}
