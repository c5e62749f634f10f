package gridcodec_test

import (
	"fmt"

	"github.com/gamma-delta/aglet/core"
	"github.com/gamma-delta/aglet/grid"
	"github.com/gamma-delta/aglet/gridcodec"
)

// Example round-trips a small level through the sparse JSON form:
// only the bounds and the two occupied cells ride the wire.
func Example() {
	g, _ := grid.New[string](core.NewRect(core.C(0, 0), 8, 8))
	_, _, _ = g.Insert(core.C(1, 1), "chest")
	_, _, _ = g.Insert(core.C(6, 2), "door")

	data, _ := gridcodec.MarshalJSON(g)
	fmt.Println(string(data))

	loaded, _ := gridcodec.UnmarshalJSON[string](data)
	fmt.Println("bounds:", loaded.Bounds(), "len:", loaded.Len())

	// Output:
	// {"origin":{"x":0,"y":0},"width":8,"height":8,"cells":[{"x":1,"y":1,"value":"chest"},{"x":6,"y":2,"value":"door"}]}
	// bounds: (0, 0)+8x8 len: 2
}
