package lanternfish_test

import (
	"errors"
	"os"
	"testing"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/lanternfish"
)

const sample = "3,4,3,1,2"

//---------------------------------------------------------------------//
//  Construction                                                       //
//---------------------------------------------------------------------//

func TestNewHistogram_Sample(t *testing.T) {
	h, err := lanternfish.NewHistogram(input.CommaInts(sample))
	if err != nil {
		t.Fatalf("NewHistogram: unexpected error %v", err)
	}
	if got := h.Total(); got != 5 {
		t.Fatalf("Total() = %d, want 5", got)
	}
	want := lanternfish.Histogram{0, 1, 1, 2, 1}
	if h != want {
		t.Fatalf("NewHistogram = %v, want %v", h, want)
	}
}

func TestNewHistogram_BadTimer(t *testing.T) {
	for _, timers := range [][]int{{3, 9}, {-1}, {0, 1, 42}} {
		if _, err := lanternfish.NewHistogram(timers); !errors.Is(err, lanternfish.ErrBadTimer) {
			t.Errorf("NewHistogram(%v) error = %v, want ErrBadTimer", timers, err)
		}
	}
}

//---------------------------------------------------------------------//
//  Simulation                                                         //
//---------------------------------------------------------------------//

func TestPopulationAfter_Sample(t *testing.T) {
	h, err := lanternfish.NewHistogram(input.CommaInts(sample))
	if err != nil {
		t.Fatalf("NewHistogram: unexpected error %v", err)
	}

	cases := []struct {
		days int
		want uint64
	}{
		{days: 0, want: 5},
		{days: 18, want: 26},
		{days: 80, want: 5934},
		{days: 256, want: 26984457539},
	}
	for _, tc := range cases {
		if got := h.PopulationAfter(tc.days); got != tc.want {
			t.Errorf("PopulationAfter(%d) = %d, want %d", tc.days, got, tc.want)
		}
	}
}

// PopulationAfter must not mutate the histogram it is called on.
func TestPopulationAfter_ValueSemantics(t *testing.T) {
	h, err := lanternfish.NewHistogram(input.CommaInts(sample))
	if err != nil {
		t.Fatalf("NewHistogram: unexpected error %v", err)
	}

	first := h.PopulationAfter(80)
	second := h.PopulationAfter(80)
	if first != second {
		t.Fatalf("repeated PopulationAfter(80) = %d then %d, want identical results", first, second)
	}
}

//---------------------------------------------------------------------//
//  Personal input                                                     //
//---------------------------------------------------------------------//

func TestPopulationAfter_Input(t *testing.T) {
	raw, err := os.ReadFile("testdata/input.txt")
	if err != nil {
		t.Skipf("no personal input: %v", err)
	}

	h, err := lanternfish.NewHistogram(input.CommaInts(string(raw)))
	if err != nil {
		t.Fatalf("NewHistogram: unexpected error %v", err)
	}
	if got := h.PopulationAfter(80); got != 363101 {
		t.Errorf("PopulationAfter(80) = %d, want 363101", got)
	}
	if got := h.PopulationAfter(256); got != 1644286074024 {
		t.Errorf("PopulationAfter(256) = %d, want 1644286074024", got)
	}
}
