// Package snowisland solves Advent of Code 2023, day 23 ("A Long Walk"):
// the longest hike across a trail map of open ground, forest, and one-way
// slopes.
//
// What
//
//   - Parse a trail map from its textual form ('.', '#', '^', 'v', '<', '>').
//   - LongestPath: the longest route from Start to Goal where a slope can
//     only be stepped onto by moving in its direction.
//   - LongestClimbingPath: the same route length with slopes treated as
//     ordinary ground.
//   - ShortestPath: BFS distance under the same movement rule, useful as a
//     sanity bound (longest can never be shorter).
//   - Supports cancellation and an observation hook via functional options.
//
// Why
//
//   - Day 23 is the one puzzle in this repository that is a real search
//     problem: maximal simple paths are NP-hard in general, so the visited
//     strategy matters and is exposed as a named policy.
//
// Visit policies
//
//	SharedVisited expands each cell at most once across the entire search.
//	That keeps the work near-linear in the grid size, but rival branches
//	consume cells from one another, so the result is a lower bound on the
//	true longest simple path. On day-23 style maps, where slopes funnel
//	every junction, the bound is tight in practice.
//
//	PerPathVisited tracks visited cells per candidate path (classic
//	backtracking). Exact, but exponential in the number of junctions; fine
//	for sample-sized maps, slow on full puzzle inputs.
//
//	LongestPath defaults to SharedVisited, LongestClimbingPath to
//	PerPathVisited. Either can be overridden with WithVisitPolicy.
//
// Determinism
//
//	Cells are expanded in a fixed order (down, up, right, left neighbors,
//	stack discipline), so repeated runs over the same input always return
//	the same answer.
//
// Complexity (W = width, H = height)
//
//   - SharedVisited:  O(W·H) expansions, O((W·H)²) worst-case copying.
//   - PerPathVisited: exponential in junction count, O(W·H) memory.
//
// Usage
//
//	island, err := snowisland.Parse(text)
//	if err != nil {
//	    // ErrInvalidTile with the offending character
//	}
//
//	steps, err := island.LongestPath()
//	if err != nil {
//	    // ErrGoalUnreachable if no route connects Start and Goal
//	}
//
//	climb, err := island.LongestClimbingPath(
//	    snowisland.WithContext(ctx),
//	    snowisland.WithOnVisit(func(p snowisland.Point, steps int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, SharedVisited policy, no hook.
//   - WithContext(ctx):     set a custom context for cancellation.
//   - WithVisitPolicy(p):   force SharedVisited or PerPathVisited.
//   - WithOnVisit(fn):      observation hook on each expanded cell.
//
// Errors
//
//   - ErrInvalidTile      if the text contains a character outside ".#^v<>".
//   - ErrGoalUnreachable  if no walkable route reaches the goal.
//   - context.Canceled / context.DeadlineExceeded via WithContext.
package snowisland
