// Package aglet is a toolkit for 2-D integer grids — opinionated
// coordinate and direction types, a coordinate-keyed container, and
// iterators over the shapes you keep tracing on tile maps.
//
// What is aglet?
//
//	A small, allocation-light library for turn-based and tile-based
//	worlds that brings together:
//		• Core primitives: Coord, Rect, Direction, DirSet — vector
//		  arithmetic, compass rotations, neighbor offsets
//		• Grid[T]: like a map[Coord]T, but backed by a bounded dense
//		  store so point operations are pure arithmetic, no hashing
//		• Scanners: area fills, perimeter walks, Bresenham lines and
//		  rays, all lazy, deterministic and restartable
//		• Codec: an optional sparse JSON/YAML adapter kept fully
//		  outside the core packages
//
// Why choose aglet?
//
//   - Fast point access – Grid[T] indexes by offset arithmetic over a
//     flat slice, not by hashing
//   - Deterministic traversal – every iterator has a fixed, documented
//     order you can write golden tests against
//   - Explicit failure – out-of-bounds inserts return a sentinel error
//     and leave the grid untouched; growth is strictly opt-in
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	core/      — Coord, Rect, Direction, DirSet: the data model
//	grid/      — Grid[T], the coordinate-keyed dense container
//	scan/      — Area, Edges, Line, Ray coordinate iterators
//	gridcodec/ — sparse JSON/YAML serialization adapter
//
// Quick ASCII example:
//
//	    ┌────────┐
//	    │ ....#. │
//	    │ .@..#. │
//	    │ ....#. │
//	    └────────┘
//
//	a Grid[Tile] holds the wall cells, scan.Line traces the @'s line
//	of sight, scan.Edges walks the room border.
//
// None of these types synchronize internally: a Grid has a single
// writer and the caller serializes access.
//
//	go get github.com/gamma-delta/aglet
package aglet
