// Package vents solves Advent of Code 2021, day 5: rasterizing
// hydrothermal vent segments and counting the cells where they overlap.
package vents

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadSegment indicates a line that is not "x1,y1 -> x2,y2".
var ErrBadSegment = errors.New("vents: bad segment")

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Segment is a vent line between two inclusive endpoints.
type Segment struct {
	From, To Point
}

// parsePoint parses "x,y" with optional surrounding whitespace.
func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q", ErrBadSegment, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q", ErrBadSegment, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q", ErrBadSegment, s)
	}

	return Point{X: x, Y: y}, nil
}

// ParseSegment parses one "x1,y1 -> x2,y2" line.
func ParseSegment(line string) (Segment, error) {
	from, to, ok := strings.Cut(line, "->")
	if !ok {
		return Segment{}, fmt.Errorf("%w: %q", ErrBadSegment, line)
	}

	p1, err := parsePoint(from)
	if err != nil {
		return Segment{}, err
	}
	p2, err := parsePoint(to)
	if err != nil {
		return Segment{}, err
	}

	return Segment{From: p1, To: p2}, nil
}

// ParseSegments parses one segment per line, skipping blank lines and
// lines that do not parse.
func ParseSegments(text string) []Segment {
	var out []Segment
	var line string
	for _, line = range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if seg, err := ParseSegment(line); err == nil {
			out = append(out, seg)
		}
	}

	return out
}

// Plot rasterizes the segments onto a sparse grid, counting how many
// segments cover each cell. Both endpoints are inclusive; each coordinate
// steps one unit toward the destination per cell, so 45-degree diagonals
// walk corner to corner. When diagonals is false, segments that are
// neither horizontal nor vertical are skipped.
func Plot(segs []Segment, diagonals bool) map[Point]int {
	grid := make(map[Point]int)
	var cur, end Point
	for _, seg := range segs {
		cur, end = seg.From, seg.To
		if !diagonals && cur.X != end.X && cur.Y != end.Y {
			continue
		}

		for cur != end {
			grid[cur]++
			if cur.X < end.X {
				cur.X++
			} else if cur.X > end.X {
				cur.X--
			}
			if cur.Y < end.Y {
				cur.Y++
			} else if cur.Y > end.Y {
				cur.Y--
			}
		}
		grid[end]++
	}

	return grid
}

// CountOverlaps reports how many cells at least two segments cover.
func CountOverlaps(grid map[Point]int) int {
	count := 0
	for _, n := range grid {
		if n > 1 {
			count++
		}
	}

	return count
}
