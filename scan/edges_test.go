package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/aglet/core"
	"github.com/gamma-delta/aglet/scan"
)

// TestEdges_GoldenWalks pins the exact clockwise perimeter walk on
// three representative rectangles.
func TestEdges_GoldenWalks(t *testing.T) {
	cases := []struct {
		name string
		rect core.Rect
		want []core.Coord
	}{
		{
			"FiveByFour", core.NewRect(core.C(0, 0), 5, 4),
			[]core.Coord{
				core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(3, 0), core.C(4, 0),
				core.C(4, 1), core.C(4, 2), core.C(4, 3),
				core.C(3, 3), core.C(2, 3), core.C(1, 3), core.C(0, 3),
				core.C(0, 2), core.C(0, 1),
			},
		},
		{
			"OffsetThreeByFour", core.NewRect(core.C(7, 11), 3, 4),
			[]core.Coord{
				core.C(7, 11), core.C(8, 11), core.C(9, 11),
				core.C(9, 12), core.C(9, 13), core.C(9, 14),
				core.C(8, 14), core.C(7, 14),
				core.C(7, 13), core.C(7, 12),
			},
		},
		{
			"TwoBySix", core.NewRect(core.C(0, 0), 2, 6),
			[]core.Coord{
				core.C(0, 0), core.C(1, 0),
				core.C(1, 1), core.C(1, 2), core.C(1, 3), core.C(1, 4), core.C(1, 5),
				core.C(0, 5),
				core.C(0, 4), core.C(0, 3), core.C(0, 2), core.C(0, 1),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan.Collect(scan.Edges(tc.rect)))
		})
	}
}

// TestEdges_Degenerate covers empty, single-point, and thin
// rectangles, where the perimeter collapses to an area scan.
func TestEdges_Degenerate(t *testing.T) {
	assert.Empty(t, scan.Collect(scan.Edges(core.NewRect(core.C(0, 0), 0, 4))))
	assert.Empty(t, scan.Collect(scan.Edges(core.NewRect(core.C(0, 0), 4, 0))))
	assert.Empty(t, scan.Collect(scan.Edges(core.NewRect(core.C(0, 0), -1, 3))))

	assert.Equal(t, []core.Coord{core.C(5, 5)},
		scan.Collect(scan.Edges(core.NewRect(core.C(5, 5), 1, 1))))

	// Single row: left to right, once.
	assert.Equal(t, []core.Coord{
		core.C(2, 9), core.C(3, 9), core.C(4, 9), core.C(5, 9),
	}, scan.Collect(scan.Edges(core.NewRect(core.C(2, 9), 4, 1))))

	// Single column: top to bottom, once.
	assert.Equal(t, []core.Coord{
		core.C(9, 2), core.C(9, 3), core.C(9, 4),
	}, scan.Collect(scan.Edges(core.NewRect(core.C(9, 2), 1, 3))))
}

// TestEdges_CountsAndUniqueness checks the 2w+2h-4 / w / h counts and
// the no-duplicates guarantee over many shapes.
func TestEdges_CountsAndUniqueness(t *testing.T) {
	for w := 1; w <= 7; w++ {
		for h := 1; h <= 7; h++ {
			r := core.NewRect(core.C(-2, 3), w, h)
			got := scan.Collect(scan.Edges(r))

			want := 2*w + 2*h - 4
			if w == 1 {
				want = h
			} else if h == 1 {
				want = w
			}
			require.Len(t, got, want, "%dx%d", w, h)

			seen := map[core.Coord]bool{}
			for _, c := range got {
				require.False(t, seen[c], "%dx%d duplicates %v", w, h, c)
				seen[c] = true
				assert.True(t, r.Contains(c))
			}
		}
	}
}

// TestEdges_LenAndReset exercises the remaining count and restart.
func TestEdges_LenAndReset(t *testing.T) {
	it := scan.Edges(core.NewRect(core.C(0, 0), 4, 4))
	assert.Equal(t, 12, it.Len())

	require.True(t, it.Next())
	assert.Equal(t, 11, it.Len())

	it.Reset()
	assert.Len(t, scan.Collect(it), 12)
}
