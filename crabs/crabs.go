// Package crabs solves Advent of Code 2021, day 7: pick the alignment
// position that minimizes total fuel spent, under a pluggable per-crab
// cost model.
package crabs

// FuelFunc prices a single move across the given distance.
// Distance is never negative.
type FuelFunc func(distance int) int

// LinearFuel costs one unit per step.
func LinearFuel(distance int) int { return distance }

// TriangleFuel costs one more unit for each successive step, so a move
// of n steps costs n*(n+1)/2.
func TriangleFuel(distance int) int { return distance * (distance + 1) / 2 }

// CheapestCost tries every alignment position from 0 through the
// largest occupied one and returns the minimum total fuel. An empty
// fleet costs nothing.
func CheapestCost(positions []int, fuel FuelFunc) int {
	if len(positions) == 0 {
		return 0
	}

	// 1. Find the far edge of the candidate range.
	var maxPos int
	for _, p := range positions {
		if p > maxPos {
			maxPos = p
		}
	}

	// 2. Price every candidate and keep the cheapest.
	best := -1
	var target, total, p int
	for target = 0; target <= maxPos; target++ {
		total = 0
		for _, p = range positions {
			if p >= target {
				total += fuel(p - target)
			} else {
				total += fuel(target - p)
			}
		}
		if best < 0 || total < best {
			best = total
		}
	}

	return best
}
