// This file declares DirSet, a bitmask over the eight compass
// directions. Typical use: autotiling masks and cached adjacency.

package core

import (
	"math/bits"
	"strings"
)

// DirSet is a set of Directions packed into one byte, bit 1<<d per
// variant. The zero value is the empty set.
type DirSet uint8

// NewDirSet builds a set containing the given directions.
func NewDirSet(ds ...Direction) DirSet {
	var s DirSet
	for _, d := range ds {
		s = s.With(d)
	}

	return s
}

// Has reports whether d is in the set.
// Complexity: O(1).
func (s DirSet) Has(d Direction) bool {
	return s&(1<<(d%numDirections)) != 0
}

// With returns the set with d added.
func (s DirSet) With(d Direction) DirSet {
	return s | 1<<(d%numDirections)
}

// Without returns the set with d removed.
func (s DirSet) Without(d Direction) DirSet {
	return s &^ (1 << (d % numDirections))
}

// Count returns the number of directions in the set.
func (s DirSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// String renders the set as the contained variant names joined by
// "|", clockwise from North; the empty set renders as "None".
func (s DirSet) String() string {
	if s == 0 {
		return "None"
	}
	var names []string
	for _, d := range Compass() {
		if s.Has(d) {
			names = append(names, d.String())
		}
	}

	return strings.Join(names, "|")
}
