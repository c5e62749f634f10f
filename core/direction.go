// This file declares Direction, the closed 8-way compass enum, its
// rotations, unit offsets, and the stable string tag used by
// serialization layers.

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownDirection indicates a direction name outside the closed
// variant set was parsed.
var ErrUnknownDirection = errors.New("core: unknown direction name")

// Direction is one of eight compass headings, clockwise from North.
// The zero value is North. Directions convert to integers with their
// clockwise index, so they can feed rotational arithmetic directly.
//
// Screen orientation: +Y grows downward, so North offsets to (0, -1).
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// numDirections is the rotation period of the compass.
	numDirections = 8
)

// directionNames holds the canonical string tag of each variant,
// indexed by the variant itself.
var directionNames = [numDirections]string{
	"North", "NorthEast", "East", "SouthEast",
	"South", "SouthWest", "West", "NorthWest",
}

// directionOffsets maps each variant to its unit Coord offset,
// indexed by the variant itself. Total: every variant has exactly one
// offset, and all eight offsets are distinct king moves.
var directionOffsets = [numDirections]Coord{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Cardinals returns the four cardinal directions, clockwise from
// North: N, E, S, W.
func Cardinals() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Compass returns all eight directions, clockwise from North.
func Compass() [8]Direction {
	return [8]Direction{
		North, NorthEast, East, SouthEast,
		South, SouthWest, West, NorthWest,
	}
}

// Offset returns the unit Coord a step in this direction adds.
// Complexity: O(1).
func (d Direction) Offset() Coord {
	return directionOffsets[d%numDirections]
}

// Rotate45 returns d rotated by the given number of 45° steps,
// clockwise for positive steps and counter-clockwise for negative.
// Closed over the variant set: any step count lands on a valid
// variant, cycling with period 8.
func (d Direction) Rotate45(steps int) Direction {
	idx := (int(d%numDirections) + steps) % numDirections
	if idx < 0 {
		idx += numDirections
	}

	return Direction(idx)
}

// Rotate90 returns d rotated by the given number of 90° steps,
// clockwise for positive steps. Cycles with period 4.
func (d Direction) Rotate90(steps int) Direction {
	return d.Rotate45(2 * steps)
}

// Opposite returns the direction pointing the other way. It is an
// involution: d.Opposite().Opposite() == d.
func (d Direction) Opposite() Direction {
	return d.Rotate45(4)
}

// IsCardinal reports whether d is one of N, E, S, W.
func (d Direction) IsCardinal() bool {
	return d%2 == 0
}

// IsDiagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// Horizontal reports whether d points purely horizontally (E or W).
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Vertical reports whether d points purely vertically (N or S).
func (d Direction) Vertical() bool {
	return d == North || d == South
}

// String returns the canonical variant name, e.g. "NorthEast".
func (d Direction) String() string {
	return directionNames[d%numDirections]
}

// MarshalText implements encoding.TextMarshaler: the stable tag a
// serialization layer writes is the canonical variant name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parsing is
// case-insensitive; unknown names yield ErrUnknownDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// ParseDirection converts a variant name back to a Direction,
// case-insensitively. Returns ErrUnknownDirection for any name
// outside the closed set.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(name, n) {
			return Direction(i), nil
		}
	}

	return North, fmt.Errorf("%q: %w", name, ErrUnknownDirection)
}

// Heading returns the compass direction nearest to the heading of an
// arbitrary vector v, and false when v is the zero vector (which has
// no heading). For any direction d, Heading(d.Offset()) == d.
func Heading(v Coord) (Direction, bool) {
	if v.X == 0 && v.Y == 0 {
		return North, false
	}
	// Angle measured clockwise from East in screen coordinates
	// (+Y down), mapped onto eighth turns. East sits at compass
	// index 2, one eighth turn per 45° sector.
	angle := math.Atan2(float64(v.Y), float64(v.X))
	eighths := int(math.Round(angle * 4 / math.Pi))
	idx := (2 + eighths) % numDirections
	if idx < 0 {
		idx += numDirections
	}

	return Direction(idx), true
}
