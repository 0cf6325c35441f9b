// Package sonar solves Advent of Code 2021, day 1: counting increases in
// windowed sums of a depth scan.
package sonar

// CountIncreasing reports how many adjacent pairs of window sums increase,
// comparing the sum over values[i+1:i+1+window] against the sum over
// values[i:i+window]. A window of 1 compares raw readings. Windows that do
// not fit the data (window < 1 or window > len(values)) yield 0.
func CountIncreasing(values []int, window int) int {
	if window < 1 || window > len(values) {
		return 0
	}

	// Adjacent windows share all but their edge elements, so the sums
	// compare as values[i+window] vs values[i].
	count := 0
	for i := 0; i+window < len(values); i++ {
		if values[i+window] > values[i] {
			count++
		}
	}

	return count
}
