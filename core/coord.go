// This file declares Coord, its constructors, and its pure vector
// arithmetic. All operations wrap on overflow (two's complement) and
// never allocate.

package core

import "fmt"

// Coord is a 2-D integer point, used both as a position and as a grid
// key. It is comparable, so it hashes deterministically as a map key.
type Coord struct {
	X, Y int
}

// C constructs a Coord. Shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c + o, component-wise.
// Complexity: O(1).
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns c - o, component-wise.
// Complexity: O(1).
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg returns the component-wise negation of c.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Mul returns c scaled by k on both axes.
func (c Coord) Mul(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// Min returns the component-wise minimum of c and o.
func (c Coord) Min(o Coord) Coord {
	return Coord{X: min(c.X, o.X), Y: min(c.Y, o.Y)}
}

// Max returns the component-wise maximum of c and o.
func (c Coord) Max(o Coord) Coord {
	return Coord{X: max(c.X, o.X), Y: max(c.Y, o.Y)}
}

// Manhattan returns the taxicab distance |dx| + |dy| between c and o.
// Distance covered stepping only through the four cardinal directions.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Chebyshev returns the king-move distance max(|dx|, |dy|) between c
// and o. A Line between two points always has Chebyshev+1 cells.
func (c Coord) Chebyshev(o Coord) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

// Sign returns the component-wise signum of c: each axis maps to
// -1, 0, or +1. This is the per-axis step logic line rasterization
// uses to pick its step direction.
func (c Coord) Sign() Coord {
	return Coord{X: sign(c.X), Y: sign(c.Y)}
}

// Step returns the neighbor of c one unit toward d.
// Complexity: O(1).
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Offset())
}

// Neighbors4 returns the four orthogonal neighbors of c, clockwise
// starting with the neighbor to the North.
func (c Coord) Neighbors4() [4]Coord {
	var out [4]Coord
	for i, d := range Cardinals() {
		out[i] = c.Step(d)
	}

	return out
}

// Neighbors8 returns the eight orthogonal and diagonal neighbors of c,
// clockwise starting with the neighbor to the North.
func (c Coord) Neighbors8() [8]Coord {
	var out [8]Coord
	for i, d := range Compass() {
		out[i] = c.Step(d)
	}

	return out
}

// String renders c as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
