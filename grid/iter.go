// This file implements the lazy cursor over a Grid's occupied cells.

package grid

import "github.com/gamma-delta/aglet/core"

// Iter is a cursor over the occupied cells of a Grid, in row-major
// store order. Use it scanner-style:
//
//	it := g.Iter()
//	for it.Next() {
//	    fmt.Println(it.Coord(), *it.Value())
//	}
//
// The cursor borrows the grid for its lifetime: mutating the grid
// while iterating — other than writing through Value — is forbidden
// by contract. A fresh Iter call (or Reset) restarts the scan.
type Iter[T any] struct {
	g    *Grid[T]
	next int // next store offset to examine
	cur  int // offset of the current cell, valid after Next() == true
}

// Iter returns a new cursor positioned before the first occupied
// cell. Constructing it is O(1); the full scan is O(Width×Height).
func (g *Grid[T]) Iter() *Iter[T] {
	return &Iter[T]{g: g}
}

// Next advances to the next occupied cell, reporting false when the
// scan is exhausted.
func (it *Iter[T]) Next() bool {
	for ; it.next < len(it.g.cells); it.next++ {
		if it.g.cells[it.next].occupied {
			it.cur = it.next
			it.next++

			return true
		}
	}

	return false
}

// Coord returns the coordinate of the current cell. Only valid after
// a Next call that returned true.
func (it *Iter[T]) Coord() core.Coord {
	return it.g.coordAt(it.cur)
}

// Value returns a pointer to the current cell's value; writing
// through it mutates the grid in place and is the one mutation
// allowed during iteration.
func (it *Iter[T]) Value() *T {
	return &it.g.cells[it.cur].value
}

// Reset rewinds the cursor so the next Next starts a fresh scan.
func (it *Iter[T]) Reset() {
	it.next, it.cur = 0, 0
}
