// Command advent runs the puzzle solutions against real inputs.
//
// By default it reads inputs from <ADVENT_INPUT_DIR>/<year>/<day>.txt,
// falling back to ./input. Select puzzles with -year and -day, or run
// everything with -all. With -verify, computed answers are checked
// against a YAML manifest and the command exits non-zero on mismatch.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	year := flag.Int("year", 0, "puzzle year to run")
	day := flag.Int("day", 0, "puzzle day to run (0 runs the whole year)")
	inputPath := flag.String("input", "", "input file override, valid for a single puzzle")
	all := flag.Bool("all", false, "run every registered puzzle")
	verify := flag.Bool("verify", false, "check answers against the manifest")
	answersPath := flag.String("answers", "answers.yaml", "answer manifest used by -verify")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	// Logging first, so everything after can report through it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	inputDir := os.Getenv("ADVENT_INPUT_DIR")
	if inputDir == "" {
		inputDir = "input"
	}

	runs := choose(*year, *day, *all)
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "nothing to run: pass -all, or -year with an optional -day")
		flag.Usage()
		os.Exit(2)
	}
	if *inputPath != "" && len(runs) != 1 {
		log.Fatal().Msg("-input overrides the input of exactly one puzzle")
	}

	var manifest *Manifest
	if *verify {
		m, err := LoadManifest(*answersPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *answersPath).Msg("cannot load answer manifest")
		}
		manifest = m
	}

	failed := 0
	for _, s := range runs {
		path := *inputPath
		if path == "" {
			path = filepath.Join(inputDir, strconv.Itoa(s.Year), strconv.Itoa(s.Day)+".txt")
		}
		raw, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			log.Info().Int("year", s.Year).Int("day", s.Day).Str("path", path).Msg("input not present, skipping")
			continue
		}
		if err != nil {
			log.Error().Err(err).Int("year", s.Year).Int("day", s.Day).Msg("cannot read input")
			failed++
			continue
		}

		started := time.Now()
		part1, part2, err := s.Solve(string(raw))
		if err != nil {
			log.Error().Err(err).Int("year", s.Year).Int("day", s.Day).Msg("solve failed")
			failed++
			continue
		}
		log.Debug().
			Int("year", s.Year).
			Int("day", s.Day).
			Str("part1", part1).
			Str("part2", part2).
			Dur("elapsed", time.Since(started)).
			Msg("solved")

		fmt.Printf("%d day %2d  %-24s part1=%-16s part2=%s\n", s.Year, s.Day, s.Name, part1, part2)

		if manifest != nil {
			if err = manifest.Check(s.Year, s.Day, part1, part2); err != nil {
				log.Error().Err(err).Msg("verification failed")
				failed++
			}
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// choose selects the registered solutions matching the flags.
func choose(year, day int, all bool) []Solution {
	if all {
		return solutions
	}

	var runs []Solution
	for _, s := range solutions {
		if s.Year != year {
			continue
		}
		if day != 0 && s.Day != day {
			continue
		}
		runs = append(runs, s)
	}

	return runs
}
