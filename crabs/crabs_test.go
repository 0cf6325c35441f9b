package crabs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/crabs"
	"github.com/katalvlaran/advent/input"
)

const sample = "16,1,2,0,4,2,7,1,2,14"

func TestFuelFuncs(t *testing.T) {
	require.Equal(t, 0, crabs.LinearFuel(0))
	require.Equal(t, 11, crabs.LinearFuel(11))

	require.Equal(t, 0, crabs.TriangleFuel(0))
	require.Equal(t, 1, crabs.TriangleFuel(1))
	require.Equal(t, 15, crabs.TriangleFuel(5))
	require.Equal(t, 66, crabs.TriangleFuel(11))
}

func TestCheapestCost_Sample(t *testing.T) {
	positions := input.CommaInts(sample)
	require.Len(t, positions, 10)

	require.Equal(t, 37, crabs.CheapestCost(positions, crabs.LinearFuel))
	require.Equal(t, 168, crabs.CheapestCost(positions, crabs.TriangleFuel))
}

func TestCheapestCost_Degenerate(t *testing.T) {
	require.Equal(t, 0, crabs.CheapestCost(nil, crabs.LinearFuel))
	require.Equal(t, 0, crabs.CheapestCost([]int{7}, crabs.TriangleFuel))
	require.Equal(t, 0, crabs.CheapestCost([]int{3, 3, 3}, crabs.LinearFuel))
}

// The optimum can sit on the far edge of the range, so the last
// candidate position must be priced too.
func TestCheapestCost_OptimumAtMax(t *testing.T) {
	require.Equal(t, 4, crabs.CheapestCost([]int{5, 5, 5, 1}, crabs.LinearFuel))
}

func TestCheapestCost_Input(t *testing.T) {
	raw, err := os.ReadFile("testdata/input.txt")
	if err != nil {
		t.Skipf("no personal input: %v", err)
	}

	positions := input.CommaInts(string(raw))
	require.Equal(t, 348996, crabs.CheapestCost(positions, crabs.LinearFuel))
	require.Equal(t, 98231647, crabs.CheapestCost(positions, crabs.TriangleFuel))
}
