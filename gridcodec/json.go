// JSON wire format over the sparse document.

package gridcodec

import (
	"encoding/json"
	"fmt"

	"github.com/gamma-delta/aglet/grid"
)

// MarshalJSON renders a grid as its sparse JSON document.
func MarshalJSON[T any](g *grid.Grid[T]) ([]byte, error) {
	out, err := json.Marshal(Encode(g))
	if err != nil {
		return nil, fmt.Errorf("gridcodec: marshal json: %w", err)
	}

	return out, nil
}

// UnmarshalJSON rebuilds a grid from a sparse JSON document. Options
// pass through to Decode.
func UnmarshalJSON[T any](data []byte, opts ...grid.Option) (*grid.Grid[T], error) {
	var doc Sparse[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gridcodec: unmarshal json: %w", err)
	}

	return Decode(doc, opts...)
}
