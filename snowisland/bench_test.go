package snowisland_test

import (
	"testing"

	"github.com/katalvlaran/advent/snowisland"
)

// BenchmarkParse measures parsing of the 23x23 sample map.
func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(sample)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = snowisland.Parse(sample)
	}
}

// BenchmarkLongestPath measures the SharedVisited search on the sample map.
func BenchmarkLongestPath(b *testing.B) {
	island, err := snowisland.Parse(sample)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(island.Width() * island.Height()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = island.LongestPath()
	}
}

// BenchmarkLongestClimbingPath measures exact backtracking on the sample map.
func BenchmarkLongestClimbingPath(b *testing.B) {
	island, err := snowisland.Parse(sample)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(island.Width() * island.Height()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = island.LongestClimbingPath()
	}
}

// BenchmarkShortestPath measures plain BFS on the sample map.
func BenchmarkShortestPath(b *testing.B) {
	island, err := snowisland.Parse(sample)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(island.Width() * island.Height()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = island.ShortestPath()
	}
}
