// Package lanternfish solves Advent of Code 2021, day 6: exponential
// population growth simulated as a nine-bucket timer histogram, so a
// quarter of a year advances in a handful of additions.
package lanternfish

import (
	"errors"
	"fmt"
)

// A spawning fish resets its timer to 6; a newborn starts at 8.
const (
	resetTimer = 6
	spawnTimer = 8
)

// ErrBadTimer indicates an initial timer outside 0..8.
var ErrBadTimer = errors.New("lanternfish: timer out of range")

// Histogram counts fish per timer value 0 through 8.
type Histogram [spawnTimer + 1]uint64

// NewHistogram buckets the initial timer readings.
func NewHistogram(timers []int) (Histogram, error) {
	var h Histogram
	for _, t := range timers {
		if t < 0 || t > spawnTimer {
			return Histogram{}, fmt.Errorf("%w: %d", ErrBadTimer, t)
		}
		h[t]++
	}

	return h, nil
}

// Total returns the current population.
func (h Histogram) Total() uint64 {
	var total uint64
	for _, n := range h {
		total += n
	}

	return total
}

// PopulationAfter advances a copy of the histogram by the given number of
// days and returns the resulting population. Each day every timer drops
// by one; fish at zero spawn a newborn at 8 and rejoin the cycle at 6.
func (h Histogram) PopulationAfter(days int) uint64 {
	var spawning uint64
	for day := 0; day < days; day++ {
		spawning = h[0]
		copy(h[:], h[1:])
		h[spawnTimer] = spawning
		h[resetTimer] += spawning
	}

	return h.Total()
}
