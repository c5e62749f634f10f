// This file declares the sparse document shape and the
// format-agnostic Encode/Decode pair the wire formats build on.

package gridcodec

import (
	"errors"
	"fmt"

	"github.com/gamma-delta/aglet/core"
	"github.com/gamma-delta/aglet/grid"
)

// ErrDuplicateCell indicates a document lists two cells with the same
// coordinate.
var ErrDuplicateCell = errors.New("gridcodec: duplicate cell coordinate")

// Point is the two-field document form of a core.Coord: x then y,
// matching the stable field layout of the core types.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Cell is one occupied grid cell in the document.
type Cell[T any] struct {
	X     int `json:"x" yaml:"x"`
	Y     int `json:"y" yaml:"y"`
	Value T   `json:"value" yaml:"value"`
}

// Sparse is the document form of a grid: its bounding rectangle plus
// every occupied cell. The dense store never appears on the wire.
type Sparse[T any] struct {
	Origin Point     `json:"origin" yaml:"origin"`
	Width  int       `json:"width" yaml:"width"`
	Height int       `json:"height" yaml:"height"`
	Cells  []Cell[T] `json:"cells" yaml:"cells"`
}

// Encode converts a grid to its sparse document. Cells appear in the
// grid's row-major scan order, so equal grids encode to equal
// documents.
// Complexity: O(area).
func Encode[T any](g *grid.Grid[T]) Sparse[T] {
	b := g.Bounds()
	doc := Sparse[T]{
		Origin: Point{X: b.Origin.X, Y: b.Origin.Y},
		Width:  b.Width,
		Height: b.Height,
		Cells:  make([]Cell[T], 0, g.Len()),
	}
	for it := g.Iter(); it.Next(); {
		c := it.Coord()
		doc.Cells = append(doc.Cells, Cell[T]{X: c.X, Y: c.Y, Value: *it.Value()})
	}

	return doc
}

// Decode rebuilds a grid from its sparse document, accepting cells in
// any order. Options pass through to the grid constructor, so
// grid.WithAutoGrow both configures the result and lets cells outside
// the declared bounds grow them instead of failing. Fails with
// grid.ErrInvalidBounds, grid.ErrOutOfBounds, or ErrDuplicateCell.
// Complexity: O(area + cells).
func Decode[T any](doc Sparse[T], opts ...grid.Option) (*grid.Grid[T], error) {
	bounds := core.NewRect(core.C(doc.Origin.X, doc.Origin.Y), doc.Width, doc.Height)
	g, err := grid.New[T](bounds, opts...)
	if err != nil {
		return nil, fmt.Errorf("gridcodec: decode bounds: %w", err)
	}

	for _, cell := range doc.Cells {
		c := core.C(cell.X, cell.Y)
		if g.Contains(c) {
			return nil, fmt.Errorf("%s: %w", c, ErrDuplicateCell)
		}
		if _, _, err = g.Insert(c, cell.Value); err != nil {
			return nil, fmt.Errorf("gridcodec: decode cell: %w", err)
		}
	}

	return g, nil
}
