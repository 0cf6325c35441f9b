package main

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/advent/bingo"
	"github.com/katalvlaran/advent/crabs"
	"github.com/katalvlaran/advent/diagnostic"
	"github.com/katalvlaran/advent/dive"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/lanternfish"
	"github.com/katalvlaran/advent/sevenseg"
	"github.com/katalvlaran/advent/snowisland"
	"github.com/katalvlaran/advent/sonar"
	"github.com/katalvlaran/advent/vents"
)

// Solution adapts one puzzle package to the runner: it takes the raw
// input text and returns both answers rendered as strings.
type Solution struct {
	Year  int
	Day   int
	Name  string
	Solve func(text string) (part1, part2 string, err error)
}

// solutions lists every wired puzzle in year/day order.
var solutions = []Solution{
	{Year: 2021, Day: 1, Name: "sonar sweep", Solve: solveSonar},
	{Year: 2021, Day: 2, Name: "dive", Solve: solveDive},
	{Year: 2021, Day: 3, Name: "binary diagnostic", Solve: solveDiagnostic},
	{Year: 2021, Day: 4, Name: "giant squid", Solve: solveBingo},
	{Year: 2021, Day: 5, Name: "hydrothermal venture", Solve: solveVents},
	{Year: 2021, Day: 6, Name: "lanternfish", Solve: solveLanternfish},
	{Year: 2021, Day: 7, Name: "the treachery of whales", Solve: solveCrabs},
	{Year: 2021, Day: 8, Name: "seven segment search", Solve: solveSevenSeg},
	{Year: 2023, Day: 23, Name: "a long walk", Solve: solveSnowIsland},
}

func solveSonar(text string) (string, string, error) {
	depths := input.Ints(text)

	return strconv.Itoa(sonar.CountIncreasing(depths, 1)),
		strconv.Itoa(sonar.CountIncreasing(depths, 3)), nil
}

func solveDive(text string) (string, string, error) {
	cmds := dive.ParseCommands(text)

	return strconv.Itoa(dive.Distance(cmds)),
		strconv.Itoa(dive.AimedDistance(cmds)), nil
}

func solveDiagnostic(text string) (string, string, error) {
	report := input.Lines(text)
	power, err := diagnostic.PowerConsumption(report)
	if err != nil {
		return "", "", err
	}
	life, err := diagnostic.LifeSupportRating(report)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(power), strconv.Itoa(life), nil
}

func solveBingo(text string) (string, string, error) {
	calls, boards, err := bingo.ParseGame(text)
	if err != nil {
		return "", "", err
	}
	scores := bingo.Play(calls, boards)
	if len(scores) == 0 {
		return "", "", errors.New("bingo: no board wins")
	}

	return strconv.Itoa(scores[0]), strconv.Itoa(scores[len(scores)-1]), nil
}

func solveVents(text string) (string, string, error) {
	segs := vents.ParseSegments(text)

	return strconv.Itoa(vents.CountOverlaps(vents.Plot(segs, false))),
		strconv.Itoa(vents.CountOverlaps(vents.Plot(segs, true))), nil
}

func solveLanternfish(text string) (string, string, error) {
	h, err := lanternfish.NewHistogram(input.CommaInts(text))
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(h.PopulationAfter(80), 10),
		strconv.FormatUint(h.PopulationAfter(256), 10), nil
}

func solveCrabs(text string) (string, string, error) {
	positions := input.CommaInts(text)

	return strconv.Itoa(crabs.CheapestCost(positions, crabs.LinearFuel)),
		strconv.Itoa(crabs.CheapestCost(positions, crabs.TriangleFuel)), nil
}

func solveSevenSeg(text string) (string, string, error) {
	entries := sevenseg.ParseEntries(text)
	sum, err := sevenseg.SumOutputs(entries)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(sevenseg.CountUnique(entries)), strconv.Itoa(sum), nil
}

func solveSnowIsland(text string) (string, string, error) {
	isle, err := snowisland.Parse(text)
	if err != nil {
		return "", "", err
	}
	hike, err := isle.LongestPath()
	if err != nil {
		return "", "", err
	}
	climb, err := isle.LongestClimbingPath()
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(hike), strconv.Itoa(climb), nil
}
