// YAML wire format over the sparse document.

package gridcodec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gamma-delta/aglet/grid"
)

// MarshalYAML renders a grid as its sparse YAML document.
func MarshalYAML[T any](g *grid.Grid[T]) ([]byte, error) {
	out, err := yaml.Marshal(Encode(g))
	if err != nil {
		return nil, fmt.Errorf("gridcodec: marshal yaml: %w", err)
	}

	return out, nil
}

// UnmarshalYAML rebuilds a grid from a sparse YAML document. Options
// pass through to Decode.
func UnmarshalYAML[T any](data []byte, opts ...grid.Option) (*grid.Grid[T], error) {
	var doc Sparse[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gridcodec: unmarshal yaml: %w", err)
	}

	return Decode(doc, opts...)
}
