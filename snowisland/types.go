// Package snowisland defines core types, options, and sentinel errors
// for the snowisland package of github.com/katalvlaran/advent.
package snowisland

import (
	"context"
	"errors"
)

// Sentinel errors for snowisland operations.
var (
	// ErrInvalidTile indicates an input character outside ".#^v<>".
	ErrInvalidTile = errors.New("snowisland: invalid tile")
	// ErrGoalUnreachable indicates no walkable route reaches the goal cell.
	ErrGoalUnreachable = errors.New("snowisland: goal unreachable")
)

// Point is a grid coordinate: X counts columns from the left edge,
// Y counts rows from the top.
type Point struct {
	X, Y int
}

// neighbors returns the four orthogonal cells in the fixed expansion
// order down, up, right, left. Search determinism relies on this order.
func (p Point) neighbors() [4]Point {
	return [4]Point{
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
	}
}

// Direction identifies one of the four orthogonal travel directions.
type Direction uint8

const (
	// Up decreases Y.
	Up Direction = iota
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Delta returns the unit step (dx, dy) for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Tile is one cell of a trail map.
type Tile uint8

const (
	// Open ground, rendered '.'.
	Open Tile = iota
	// Blocked forest, rendered '#'.
	Blocked
	// SlopeUp admits entry only while moving up, rendered '^'.
	SlopeUp
	// SlopeDown admits entry only while moving down, rendered 'v'.
	SlopeDown
	// SlopeLeft admits entry only while moving left, rendered '<'.
	SlopeLeft
	// SlopeRight admits entry only while moving right, rendered '>'.
	SlopeRight
)

// tileRunes maps each Tile to its textual form, indexed by the constant value.
var tileRunes = [...]rune{'.', '#', '^', 'v', '<', '>'}

// Rune returns the textual form of the tile.
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}

	return '?'
}

// IsSlope reports whether the tile is one of the four slopes.
func (t Tile) IsSlope() bool {
	return t >= SlopeUp && t <= SlopeRight
}

// SlopeDirection returns the travel direction a slope admits.
// ok is false for Open and Blocked tiles.
func (t Tile) SlopeDirection() (d Direction, ok bool) {
	switch t {
	case SlopeUp:
		return Up, true
	case SlopeDown:
		return Down, true
	case SlopeLeft:
		return Left, true
	case SlopeRight:
		return Right, true
	default:
		return 0, false
	}
}

// VisitPolicy controls how a longest-path search tracks visited cells.
//
//   - SharedVisited keeps one visited set for the entire search. Each cell
//     is expanded at most once, keeping the work near-linear in the grid
//     size, but rival branches consume cells from one another: the result
//     is a lower bound on the true longest simple path.
//
//   - PerPathVisited tracks visited cells per candidate path
//     (backtracking). Exact longest simple path, exponential worst case.
type VisitPolicy int

const (
	// SharedVisited mode: one visited set across the whole search.
	SharedVisited VisitPolicy = iota

	// PerPathVisited mode: visited tracked per candidate path, exact result.
	PerPathVisited
)

// Option configures optional behavior of path searches.
// Use with LongestPath, LongestClimbingPath, or ShortestPath.
type Option func(*Options)

// Options holds configurable parameters for path searches.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early.
	Ctx context.Context

	// Policy selects the visited-set strategy. Each operation seeds its own
	// default before options are applied: LongestPath starts from
	// SharedVisited, LongestClimbingPath from PerPathVisited.
	Policy VisitPolicy

	// OnVisit, if non-nil, is invoked on each expanded cell with the cell
	// and the number of steps taken to reach it. Observation only; it
	// cannot abort the search.
	OnVisit func(p Point, steps int)
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - SharedVisited policy
//   - No observation hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Policy:  SharedVisited,
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitPolicy returns an Option that forces the visited-set strategy,
// overriding the operation's default.
func WithVisitPolicy(p VisitPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithOnVisit returns an Option that installs fn as an observation hook.
// The hook fires for every cell the search expands.
func WithOnVisit(fn func(p Point, steps int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
