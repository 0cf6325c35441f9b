// Package sevenseg solves Advent of Code 2021, day 8: recover scrambled
// seven-segment display wirings by segment-count and containment
// elimination, then read the four-digit outputs.
package sevenseg

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	// ErrBadEntry indicates a line that does not parse as an observation.
	ErrBadEntry = errors.New("sevenseg: malformed entry")
	// ErrUndecodable indicates patterns that resist the elimination rules.
	ErrUndecodable = errors.New("sevenseg: patterns do not decode")
)

// Signal is a set of lit segments packed into the low seven bits,
// segment 'a' highest and 'g' lowest.
type Signal uint8

// ParseSignal packs a nonempty run of segment letters into a Signal.
func ParseSignal(s string) (Signal, error) {
	var mask Signal
	for _, r := range s {
		if r < 'a' || r > 'g' {
			return 0, fmt.Errorf("%w: segment %q", ErrBadEntry, r)
		}
		mask |= 1 << ('g' - r)
	}
	if mask == 0 {
		return 0, fmt.Errorf("%w: empty signal", ErrBadEntry)
	}

	return mask, nil
}

// Segments returns the number of lit segments.
func (s Signal) Segments() int { return bits.OnesCount8(uint8(s)) }

// String renders the lit segments in wire order.
func (s Signal) String() string {
	var b strings.Builder
	for c := byte('a'); c <= 'g'; c++ {
		if s&(1<<('g'-c)) != 0 {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// contains reports whether every lit segment of o is also lit in s.
func (s Signal) contains(o Signal) bool { return s&o == o }

// Entry is one display observation: the ten unique signal patterns and
// the four output digits shown after the separator.
type Entry struct {
	Patterns [10]Signal
	Outputs  [4]Signal
}

// ParseEntry reads one "patterns | outputs" line.
func ParseEntry(line string) (Entry, error) {
	left, right, ok := strings.Cut(line, "|")
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing separator in %q", ErrBadEntry, line)
	}

	var e Entry
	patterns := strings.Fields(left)
	outputs := strings.Fields(right)
	if len(patterns) != len(e.Patterns) || len(outputs) != len(e.Outputs) {
		return Entry{}, fmt.Errorf("%w: want %d patterns and %d outputs in %q",
			ErrBadEntry, len(e.Patterns), len(e.Outputs), line)
	}

	var err error
	for i, p := range patterns {
		if e.Patterns[i], err = ParseSignal(p); err != nil {
			return Entry{}, err
		}
	}
	for i, o := range outputs {
		if e.Outputs[i], err = ParseSignal(o); err != nil {
			return Entry{}, err
		}
	}

	return e, nil
}

// ParseEntries reads one entry per non-blank line, skipping malformed
// lines.
func ParseEntries(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}

	return entries
}

// CountUnique counts output digits identifiable by segment count alone,
// the digits 1, 4, 7 and 8.
func CountUnique(entries []Entry) int {
	var count int
	for _, e := range entries {
		for _, o := range e.Outputs {
			switch o.Segments() {
			case 2, 3, 4, 7:
				count++
			}
		}
	}

	return count
}

// Decode resolves the scrambled wiring and returns the four-digit
// output value.
//
// The digits 1, 4, 7 and 8 each light a unique number of segments. The
// rest fall to containment: 3 is the five-segment pattern covering 1,
// 9 the six-segment pattern covering 3, 0 the remaining six-segment
// pattern covering 7, 6 the last six-segment pattern, 5 the
// five-segment pattern covered by 6, and 2 whatever is left.
func (e Entry) Decode() (int, error) {
	// 1. Bucket the patterns by segment count.
	var one, four, seven, eight Signal
	var fives, sixes []Signal
	for _, s := range e.Patterns {
		switch s.Segments() {
		case 2:
			one = s
		case 3:
			seven = s
		case 4:
			four = s
		case 5:
			fives = append(fives, s)
		case 6:
			sixes = append(sixes, s)
		case 7:
			eight = s
		}
	}
	if one == 0 || four == 0 || seven == 0 || eight == 0 ||
		len(fives) != 3 || len(sixes) != 3 {
		return 0, fmt.Errorf("%w: segment counts are off", ErrUndecodable)
	}

	// 2. Resolve the ambiguous digits by containment.
	three, fives := take(fives, func(s Signal) bool { return s.contains(one) })
	nine, sixes := take(sixes, func(s Signal) bool { return s.contains(three) })
	zero, sixes := take(sixes, func(s Signal) bool { return s.contains(seven) })
	if three == 0 || nine == 0 || zero == 0 || len(sixes) != 1 {
		return 0, fmt.Errorf("%w: containment rules exhausted", ErrUndecodable)
	}
	six := sixes[0]
	five, fives := take(fives, func(s Signal) bool { return six.contains(s) })
	if five == 0 || len(fives) != 1 {
		return 0, fmt.Errorf("%w: containment rules exhausted", ErrUndecodable)
	}
	two := fives[0]

	// 3. Read the outputs against the resolved digit table.
	digits := [10]Signal{zero, one, two, three, four, five, six, seven, eight, nine}
	var value int
	for _, out := range e.Outputs {
		matched := false
		for d, s := range digits {
			if s == out {
				value = value*10 + d
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("%w: output %q matches no digit", ErrUndecodable, out)
		}
	}

	return value, nil
}

// take removes the first signal satisfying pred from pool.
func take(pool []Signal, pred func(Signal) bool) (Signal, []Signal) {
	for i, s := range pool {
		if pred(s) {
			return s, append(pool[:i:i], pool[i+1:]...)
		}
	}

	return 0, pool
}

// SumOutputs decodes every entry and totals the output values.
func SumOutputs(entries []Entry) (int, error) {
	var sum int
	for _, e := range entries {
		v, err := e.Decode()
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}
