// Package bingo solves Advent of Code 2021, day 4: playing every board
// against a called number sequence until all of them win.
package bingo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the fixed edge length of every bingo board.
const BoardSize = 5

// ErrBadBoard indicates board text that is not five rows of five integers.
var ErrBadBoard = errors.New("bingo: bad board")

// Cell is one number on a board and whether it has been called.
type Cell struct {
	Value  int
	Marked bool
}

// Board is a 5x5 bingo board.
type Board [BoardSize][BoardSize]Cell

// ParseBoard parses exactly five rows of five whitespace-separated
// integers.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%w: %d rows", ErrBadBoard, len(rows))
	}

	var b Board
	var (
		i, j, n int
		row, f  string
		fields  []string
		err     error
	)
	for i, row = range rows {
		fields = strings.Fields(row)
		if len(fields) != BoardSize {
			return nil, fmt.Errorf("%w: row %q", ErrBadBoard, row)
		}
		for j, f = range fields {
			if n, err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("%w: cell %q", ErrBadBoard, f)
			}
			b[i][j] = Cell{Value: n}
		}
	}

	return &b, nil
}

// ParseGame splits fixture text into the called numbers (first non-blank
// line, comma-separated) and the boards (remaining non-blank lines in
// chunks of five).
func ParseGame(text string) (calls []int, boards []*Board, err error) {
	// 1. Normalize: trim each line, drop the blanks.
	var lines []string
	var line string
	for _, line = range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrBadBoard)
	}

	// 2. First line carries the calls; unparseable tokens are skipped.
	for _, tok := range strings.Split(lines[0], ",") {
		if n, e := strconv.Atoi(strings.TrimSpace(tok)); e == nil {
			calls = append(calls, n)
		}
	}

	// 3. The rest chunks into five-row boards.
	rest := lines[1:]
	if len(rest)%BoardSize != 0 {
		return nil, nil, fmt.Errorf("%w: %d leftover rows", ErrBadBoard, len(rest)%BoardSize)
	}
	var b *Board
	for i := 0; i < len(rest); i += BoardSize {
		if b, err = ParseBoard(rest[i : i+BoardSize]); err != nil {
			return nil, nil, err
		}
		boards = append(boards, b)
	}

	return calls, boards, nil
}

// Mark marks every cell holding number.
func (b *Board) Mark(number int) {
	for i := range b {
		for j := range b[i] {
			if b[i][j].Value == number {
				b[i][j].Marked = true
			}
		}
	}
}

// Won reports whether any full row or column is marked.
func (b *Board) Won() bool {
	var row, col bool
	for i := 0; i < BoardSize; i++ {
		row, col = true, true
		for j := 0; j < BoardSize; j++ {
			row = row && b[i][j].Marked
			col = col && b[j][i].Marked
		}
		if row || col {
			return true
		}
	}

	return false
}

// Score sums the unmarked cells and multiplies by the last called number.
func (b *Board) Score(lastCall int) int {
	sum := 0
	for i := range b {
		for j := range b[i] {
			if !b[i][j].Marked {
				sum += b[i][j].Value
			}
		}
	}

	return sum * lastCall
}

// Play marks every board call by call, collecting winning scores in the
// order the wins happen; a board that wins is retired from further play.
// The first score answers part one, the last score part two.
func Play(calls []int, boards []*Board) []int {
	var scores []int
	var remaining []*Board
	for _, call := range calls {
		remaining = boards[:0]
		for _, b := range boards {
			b.Mark(call)
			if b.Won() {
				scores = append(scores, b.Score(call))
			} else {
				remaining = append(remaining, b)
			}
		}
		boards = remaining
	}

	return scores
}
