package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/aglet/core"
	"github.com/gamma-delta/aglet/scan"
)

// TestArea_RowMajorGolden pins the exact scan order on a small rect.
func TestArea_RowMajorGolden(t *testing.T) {
	got := scan.Collect(scan.Area(core.NewRect(core.C(2, 1), 3, 2)))

	assert.Equal(t, []core.Coord{
		core.C(2, 1), core.C(3, 1), core.C(4, 1),
		core.C(2, 2), core.C(3, 2), core.C(4, 2),
	}, got)
}

// TestArea_CountAndDomain verifies the w*h count, uniqueness, and the
// half-open domain over a spread of rectangles including degenerates.
func TestArea_CountAndDomain(t *testing.T) {
	cases := []struct {
		name string
		rect core.Rect
	}{
		{"Square", core.NewRect(core.C(0, 0), 5, 5)},
		{"Wide", core.NewRect(core.C(-3, 7), 8, 2)},
		{"Tall", core.NewRect(core.C(4, -9), 1, 6)},
		{"Point", core.NewRect(core.C(1, 1), 1, 1)},
		{"ZeroWidth", core.NewRect(core.C(0, 0), 0, 5)},
		{"ZeroHeight", core.NewRect(core.C(0, 0), 5, 0)},
		{"Negative", core.NewRect(core.C(0, 0), -2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scan.Collect(scan.Area(tc.rect))
			require.Len(t, got, tc.rect.Area())

			seen := map[core.Coord]bool{}
			for _, c := range got {
				assert.True(t, tc.rect.Contains(c), "%v inside %v", c, tc.rect)
				assert.False(t, seen[c], "%v duplicated", c)
				seen[c] = true
			}
		})
	}
}

// TestArea_LenAndReset exercises the remaining count and restart.
func TestArea_LenAndReset(t *testing.T) {
	it := scan.Area(core.NewRect(core.C(0, 0), 4, 3))
	assert.Equal(t, 12, it.Len())

	require.True(t, it.Next())
	require.True(t, it.Next())
	assert.Equal(t, 10, it.Len())

	it.Reset()
	assert.Equal(t, 12, it.Len())
	got := scan.Collect(it)
	assert.Len(t, got, 12, "Reset restarts the full scan")
	assert.Equal(t, 0, it.Len())
}
