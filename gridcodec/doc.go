// Package gridcodec serializes grids to and from JSON and YAML in a
// sparse document form: the bounding rectangle plus the occupied
// cells. The core packages know nothing about it — this adapter reads
// the stable field layout (Coord's x then y, a grid's origin, width,
// height, and occupied cells) and nothing else.
//
// What:
//
//   - Sparse[T] is the exported document shape, with json and yaml
//     struct tags. Sparse, not dense: absent cells are simply absent,
//     so T needs no reserved empty value and mostly-empty grids stay
//     small on the wire.
//   - Encode/Decode convert between grid.Grid[T] and Sparse[T].
//     Encode emits cells in the grid's row-major scan order; Decode
//     accepts them in any order.
//   - MarshalJSON/UnmarshalJSON and MarshalYAML/UnmarshalYAML wrap
//     the two wire formats (encoding/json, gopkg.in/yaml.v3) around
//     Encode/Decode.
//
// Round-trip: for any T that round-trips under the chosen format,
// decoding an encoded grid yields identical bounds and an identical
// occupied key/value set.
//
// Errors:
//
//   - grid.ErrInvalidBounds: the document declares negative
//     dimensions.
//   - grid.ErrOutOfBounds: a cell falls outside the declared bounds.
//     Passing grid.WithAutoGrow through Decode turns this into growth.
//   - ErrDuplicateCell: two cells share a coordinate.
//
// Direction values serialize as their variant names under JSON via
// core.Direction's TextMarshaler. The YAML encoder honors the same
// text tag; YAML decode of named directions is not supported, since
// yaml.v3 does not consult TextUnmarshaler.
package gridcodec
