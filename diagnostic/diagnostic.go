// Package diagnostic solves Advent of Code 2021, day 3: deriving power
// consumption and life-support ratings from a binary diagnostic report.
package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for diagnostic operations.
var (
	// ErrBadBit indicates a report character outside '0' and '1'.
	ErrBadBit = errors.New("diagnostic: bad bit")
	// ErrNoRating indicates the bit criteria ran out of columns before
	// isolating a single row.
	ErrNoRating = errors.New("diagnostic: bit criteria exhausted the report")
)

// GammaRate returns the most-common bit per column of the report: a
// column reads '1' exactly when its ones outnumber half the rows. An
// empty report yields "".
func GammaRate(report []string) string {
	if len(report) == 0 {
		return ""
	}

	ones := make([]int, len(report[0]))
	var (
		row string
		i   int
		c   rune
	)
	for _, row = range report {
		for i, c = range row {
			if i < len(ones) && c == '1' {
				ones[i]++
			}
		}
	}

	var b strings.Builder
	b.Grow(len(ones))
	for _, n := range ones {
		if n > len(report)/2 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// FlipBits returns s with every '0' and '1' swapped.
func FlipBits(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '0':
			b.WriteByte('1')
		case '1':
			b.WriteByte('0')
		default:
			return "", fmt.Errorf("%w: %q", ErrBadBit, c)
		}
	}

	return b.String(), nil
}

// ParseBinary converts a binary string to its decimal value.
func ParseBinary(s string) (int, error) {
	n, err := strconv.ParseInt(s, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadBit, s)
	}

	return int(n), nil
}

// PowerConsumption multiplies the gamma rate by the epsilon rate (the
// gamma rate with every bit flipped).
func PowerConsumption(report []string) (int, error) {
	gamma := GammaRate(report)
	epsilon, err := FlipBits(gamma)
	if err != nil {
		return 0, err
	}

	g, err := ParseBinary(gamma)
	if err != nil {
		return 0, err
	}
	e, err := ParseBinary(epsilon)
	if err != nil {
		return 0, err
	}

	return g * e, nil
}

// OxygenRating filters the report down to the row holding the most common
// bit in each successive column, ties favoring '1'.
func OxygenRating(report []string) (string, error) {
	return ratingFilter(report, func(ones, zeros int) byte {
		if ones >= zeros {
			return '1'
		}

		return '0'
	})
}

// CO2Rating filters the report down to the row holding the least common
// bit in each successive column, ties favoring '0'.
func CO2Rating(report []string) (string, error) {
	return ratingFilter(report, func(ones, zeros int) byte {
		if zeros > ones {
			return '1'
		}

		return '0'
	})
}

// LifeSupportRating multiplies the oxygen generator rating by the CO2
// scrubber rating.
func LifeSupportRating(report []string) (int, error) {
	oxygen, err := OxygenRating(report)
	if err != nil {
		return 0, err
	}
	co2, err := CO2Rating(report)
	if err != nil {
		return 0, err
	}

	o, err := ParseBinary(oxygen)
	if err != nil {
		return 0, err
	}
	c, err := ParseBinary(co2)
	if err != nil {
		return 0, err
	}

	return o * c, nil
}

// ratingFilter repeatedly keeps the rows whose bit at the current column
// equals keep(ones, zeros), one column at a time, until a single row
// remains.
func ratingFilter(report []string, keep func(ones, zeros int) byte) (string, error) {
	rows := make([]string, len(report))
	copy(rows, report)

	var (
		ones, zeros int
		bit         byte
		row         string
		kept        []string
	)
	for pos := 0; len(rows) != 1; pos++ {
		if len(rows) == 0 {
			return "", fmt.Errorf("%w: no rows left at column %d", ErrNoRating, pos)
		}

		ones, zeros = 0, 0
		for _, row = range rows {
			if pos >= len(row) {
				return "", fmt.Errorf("%w: %d identical rows", ErrNoRating, len(rows))
			}
			switch row[pos] {
			case '1':
				ones++
			case '0':
				zeros++
			default:
				return "", fmt.Errorf("%w: %q", ErrBadBit, rune(row[pos]))
			}
		}

		bit = keep(ones, zeros)
		kept = rows[:0]
		for _, row = range rows {
			if row[pos] == bit {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	return rows[0], nil
}
