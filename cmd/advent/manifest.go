package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Answer records the accepted results for one puzzle. Answers are kept
// as strings so the manifest survives values wider than int64. An empty
// part means "not recorded" and is never checked.
type Answer struct {
	Year  int    `yaml:"year"`
	Day   int    `yaml:"day"`
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Manifest holds the accepted answers for -verify runs.
type Manifest struct {
	Answers []Answer `yaml:"answers"`
}

// LoadManifest reads a YAML answer manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return &m, nil
}

// Check compares computed answers against the manifest entry for the
// given puzzle. Puzzles without a manifest entry pass.
func (m *Manifest) Check(year, day int, part1, part2 string) error {
	for _, a := range m.Answers {
		if a.Year != year || a.Day != day {
			continue
		}
		if a.Part1 != "" && a.Part1 != part1 {
			return fmt.Errorf("%d day %d part1 = %s, manifest says %s", year, day, part1, a.Part1)
		}
		if a.Part2 != "" && a.Part2 != part2 {
			return fmt.Errorf("%d day %d part2 = %s, manifest says %s", year, day, part2, a.Part2)
		}

		return nil
	}

	return nil
}
