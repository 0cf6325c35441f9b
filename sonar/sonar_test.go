package sonar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/sonar"
)

const sample = `
	199
	200
	208
	210
	200
	207
	240
	269
	260
	263
`

func TestCountIncreasing_Sample(t *testing.T) {
	depths := input.Ints(sample)

	assert.Equal(t, 7, sonar.CountIncreasing(depths, 1))
	assert.Equal(t, 5, sonar.CountIncreasing(depths, 3))
}

func TestCountIncreasing(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		window int
		want   int
	}{
		{"DocExample", []int{1, 2, 3, 4, 5}, 3, 2},
		{"SingleReadingWindows", []int{1, 2, 1, 3}, 1, 2},
		{"Empty", nil, 1, 0},
		{"WindowTooSmall", []int{1, 2, 3}, 0, 0},
		{"WindowTooLarge", []int{1, 2, 3}, 4, 0},
		{"WindowCoversAll", []int{1, 2, 3}, 3, 0},
		{"Monotone", []int{5, 4, 3, 2}, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sonar.CountIncreasing(tc.values, tc.window))
		})
	}
}

func TestCountIncreasing_Input(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "input.txt"))
	if err != nil {
		t.Skipf("personal input not available: %v", err)
	}
	depths := input.Ints(string(raw))

	assert.Equal(t, 1583, sonar.CountIncreasing(depths, 1))
	assert.Equal(t, 1627, sonar.CountIncreasing(depths, 3))
}
