package vents_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/vents"
)

const sample = `
	0,9 -> 5,9
	8,0 -> 0,8
	9,4 -> 3,4
	2,2 -> 2,1
	7,0 -> 7,4
	6,4 -> 2,0
	0,9 -> 2,9
	3,4 -> 1,4
	0,0 -> 8,8
	5,5 -> 8,2
`

func TestParseSegment(t *testing.T) {
	seg, err := vents.ParseSegment("0,9 -> 5,9")
	require.NoError(t, err)
	assert.Equal(t, vents.Segment{
		From: vents.Point{X: 0, Y: 9},
		To:   vents.Point{X: 5, Y: 9},
	}, seg)
}

func TestParseSegment_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"Empty", ""},
		{"NoArrow", "0,9 5,9"},
		{"BadFrom", "a,9 -> 5,9"},
		{"BadTo", "0,9 -> 5,b"},
		{"MissingComma", "09 -> 5,9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vents.ParseSegment(tc.line)
			assert.ErrorIs(t, err, vents.ErrBadSegment)
		})
	}
}

func TestParseSegments_SkipsMalformed(t *testing.T) {
	segs := vents.ParseSegments("0,0 -> 1,0\ngarbage\n2,2 -> 2,4\n")
	assert.Len(t, segs, 2)
}

func TestPlot_SingleSegment(t *testing.T) {
	segs := []vents.Segment{{From: vents.Point{X: 1, Y: 1}, To: vents.Point{X: 3, Y: 1}}}
	grid := vents.Plot(segs, false)

	assert.Len(t, grid, 3, "both endpoints are inclusive")
	for _, p := range []vents.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}} {
		assert.Equal(t, 1, grid[p])
	}
}

func TestPlot_CrossingSegments(t *testing.T) {
	segs := []vents.Segment{
		{From: vents.Point{X: 0, Y: 1}, To: vents.Point{X: 2, Y: 1}},
		{From: vents.Point{X: 1, Y: 0}, To: vents.Point{X: 1, Y: 2}},
	}
	grid := vents.Plot(segs, false)

	assert.Equal(t, 2, grid[vents.Point{X: 1, Y: 1}])
	assert.Equal(t, 1, vents.CountOverlaps(grid))
}

func TestPlot_DiagonalsSkippedWhenExcluded(t *testing.T) {
	segs := []vents.Segment{{From: vents.Point{X: 0, Y: 0}, To: vents.Point{X: 3, Y: 3}}}

	assert.Empty(t, vents.Plot(segs, false))
	assert.Len(t, vents.Plot(segs, true), 4)
}

func TestCountOverlaps_Sample(t *testing.T) {
	segs := vents.ParseSegments(sample)
	require.Len(t, segs, 10)

	straight := vents.Plot(segs, false)
	assert.Equal(t, 5, vents.CountOverlaps(straight))

	all := vents.Plot(segs, true)
	assert.Equal(t, 12, vents.CountOverlaps(all))
}

func TestCountOverlaps_Input(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "input.txt"))
	if err != nil {
		t.Skipf("personal input not available: %v", err)
	}
	segs := vents.ParseSegments(string(raw))

	assert.Equal(t, 8111, vents.CountOverlaps(vents.Plot(segs, false)))
	assert.Equal(t, 22088, vents.CountOverlaps(vents.Plot(segs, true)))
}
