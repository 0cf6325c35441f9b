// Package advent is a collection of Advent of Code solutions — each puzzle
// solved as a small, self-contained, well-tested Go package.
//
// 🚀 What is advent?
//
//	A puzzle playground where every day stands alone:
//		• sonar       — windowed-sum increase counting        (2021, day 1)
//		• dive        — submarine navigation commands          (2021, day 2)
//		• diagnostic  — binary diagnostic bit voting           (2021, day 3)
//		• bingo       — bingo vs. a number caller              (2021, day 4)
//		• vents       — line-segment overlap rasterization     (2021, day 5)
//		• lanternfish — exponential growth via a 9-bucket hist (2021, day 6)
//		• crabs       — least-cost horizontal positioning      (2021, day 7)
//		• sevenseg    — seven-segment signal deduction         (2021, day 8)
//		• snowisland  — longest hiking path on a slope grid    (2023, day 23)
//
// ✨ Why this shape?
//
//   - Independent packages – no shared runtime, no cross-puzzle imports
//   - Pure functions – fixture text in, answers out, errors for bad input
//   - Real tests – published sample answers pinned in every package
//
// Supporting pieces:
//
//	input/      — fixture-text helpers (lines, ints, comma ints)
//	cmd/advent/ — CLI to solve any day or verify against answers.yaml
//
// Personal puzzle inputs are not committed; drop them under input/<year>/
// <day>.txt (or a package's testdata/input.txt) and the regression tests
// pick them up.
//
//	go get github.com/katalvlaran/advent
package advent
