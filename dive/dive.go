// Package dive solves Advent of Code 2021, day 2: steering a submarine
// through a planned course of forward, down, and up commands.
package dive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCommand indicates a line that is not "<verb> <amount>" with a
// known verb and an integer amount.
var ErrBadCommand = errors.New("dive: bad command")

// Action is the verb of a course command.
type Action uint8

const (
	// Forward advances horizontally; in the aimed reading it also dives.
	Forward Action = iota
	// Down increases depth (or aim).
	Down
	// Up decreases depth (or aim).
	Up
)

// Command is one parsed course instruction.
type Command struct {
	Action Action
	Amount int
}

// ParseCommand parses a single "<verb> <amount>" line. Tokens after the
// amount are ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, line)
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: amount %q", ErrBadCommand, fields[1])
	}

	switch fields[0] {
	case "forward":
		return Command{Action: Forward, Amount: amount}, nil
	case "down":
		return Command{Action: Down, Amount: amount}, nil
	case "up":
		return Command{Action: Up, Amount: amount}, nil
	default:
		return Command{}, fmt.Errorf("%w: verb %q", ErrBadCommand, fields[0])
	}
}

// ParseCommands parses one command per line, skipping blank lines and
// lines that do not parse.
func ParseCommands(text string) []Command {
	var out []Command
	var line string
	for _, line = range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if cmd, err := ParseCommand(line); err == nil {
			out = append(out, cmd)
		}
	}

	return out
}

// Distance runs the course in the naive reading, where down and up change
// depth directly, and returns horizontal position times final depth.
func Distance(cmds []Command) int {
	var horizontal, depth int
	for _, c := range cmds {
		switch c.Action {
		case Forward:
			horizontal += c.Amount
		case Down:
			depth += c.Amount
		case Up:
			depth -= c.Amount
		}
	}

	return horizontal * depth
}

// AimedDistance runs the course in the aimed reading: down and up steer
// the aim, forward advances and dives by aim times amount. Returns
// horizontal position times final depth.
func AimedDistance(cmds []Command) int {
	var horizontal, depth, aim int
	for _, c := range cmds {
		switch c.Action {
		case Forward:
			horizontal += c.Amount
			depth += aim * c.Amount
		case Down:
			aim += c.Amount
		case Up:
			aim -= c.Amount
		}
	}

	return horizontal * depth
}
