// Package input provides small helpers for the fixture text this
// repository feeds its puzzles: trimmed lines and tolerant integer
// parsing, so indented raw-string literals and files with trailing
// newlines normalize to the same values.
package input

import (
	"strconv"
	"strings"
)

// Lines splits s on newlines, trims surrounding whitespace from each
// line, and drops the blanks.
func Lines(s string) []string {
	var out []string
	var line string
	for _, line = range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}

	return out
}

// Ints parses one integer per line of s, silently skipping tokens that
// do not parse.
func Ints(s string) []int {
	var out []int
	for _, line := range Lines(s) {
		if n, err := strconv.Atoi(line); err == nil {
			out = append(out, n)
		}
	}

	return out
}

// CommaInts parses a comma-separated list of integers, trimming
// whitespace around each token and silently skipping the ones that do
// not parse.
func CommaInts(s string) []int {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
			out = append(out, n)
		}
	}

	return out
}
