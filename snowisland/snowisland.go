package snowisland

import (
	"fmt"
	"strings"
)

// Island is a parsed trail map. It is immutable once built.
// Tiles are stored sparsely by coordinate; a ragged input row simply
// leaves its missing cells absent, and At reports ok=false for them.
type Island struct {
	tiles  map[Point]Tile
	width  int
	height int
}

// Parse builds an Island from its textual form.
//
// The text is normalized the way this repository treats every fixture:
// surrounding whitespace is trimmed per line and blank lines are dropped,
// so indented raw-string literals and files with trailing newlines parse
// as-is. Height is the number of remaining rows, width the length of the
// longest row. Any character outside ".#^v<>" fails with ErrInvalidTile.
func Parse(text string) (*Island, error) {
	// 1. Normalize fixture text: trim each line, drop blanks.
	var rows []string
	var line string
	for _, line = range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}

	// 2. Map characters to tiles, tracking the widest row.
	isl := &Island{
		tiles:  make(map[Point]Tile, len(rows)*len(rows)),
		height: len(rows),
	}
	var (
		x, y int
		r    rune
	)
	for y, line = range rows {
		if len(line) > isl.width {
			isl.width = len(line)
		}
		for x, r = range line {
			switch r {
			case '.':
				isl.tiles[Point{X: x, Y: y}] = Open
			case '#':
				isl.tiles[Point{X: x, Y: y}] = Blocked
			case '^':
				isl.tiles[Point{X: x, Y: y}] = SlopeUp
			case 'v':
				isl.tiles[Point{X: x, Y: y}] = SlopeDown
			case '<':
				isl.tiles[Point{X: x, Y: y}] = SlopeLeft
			case '>':
				isl.tiles[Point{X: x, Y: y}] = SlopeRight
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, r, x, y)
			}
		}
	}

	return isl, nil
}

// Width returns the length of the longest row.
func (i *Island) Width() int { return i.width }

// Height returns the number of rows.
func (i *Island) Height() int { return i.height }

// At reports the tile at p. ok is false outside the grid and for cells a
// ragged row never covered.
func (i *Island) At(p Point) (t Tile, ok bool) {
	t, ok = i.tiles[p]

	return t, ok
}

// Start returns the entry cell, (1, 0): the single gap in the top border
// of every trail map.
func (i *Island) Start() Point { return Point{X: 1, Y: 0} }

// Goal returns the exit cell, (width-2, height-1): the single gap in the
// bottom border.
func (i *Island) Goal() Point { return Point{X: i.width - 2, Y: i.height - 1} }

// String renders the island in its textual form, one row per line.
// Cells absent from a ragged row render as spaces; for rectangular input
// the output round-trips through Parse.
func (i *Island) String() string {
	var b strings.Builder
	b.Grow((i.width + 1) * i.height)
	for y := 0; y < i.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < i.width; x++ {
			if t, ok := i.tiles[Point{X: x, Y: y}]; ok {
				b.WriteRune(t.Rune())
			} else {
				b.WriteByte(' ')
			}
		}
	}

	return b.String()
}
