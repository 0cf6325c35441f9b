package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/input"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"OnlyBlanks", "\n  \n\t\n", nil},
		{"Plain", "a\nb", []string{"a", "b"}},
		{"IndentedFixture", "\n\t\tforward 5\n\t\tdown 3\n\t", []string{"forward 5", "down 3"}},
		{"BlankInterior", "a\n\nb\n", []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, input.Lines(tc.in))
		})
	}
}

func TestInts(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"Empty", "", nil},
		{"Plain", "1\n2\n3", []int{1, 2, 3}},
		{"IndentedFixture", "\n\t199\n\t200\n", []int{199, 200}},
		{"SkipsGarbage", "1\nx\n-3\n", []int{1, -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, input.Ints(tc.in))
		})
	}
}

func TestCommaInts(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"Empty", "", nil},
		{"Plain", "3,4,3,1,2", []int{3, 4, 3, 1, 2}},
		{"Spaced", " 16 , 1 ,2 ", []int{16, 1, 2}},
		{"SkipsGarbage", "1,,x,4", []int{1, 4}},
		{"TrailingNewline", "3,4,3,1,2\n", []int{3, 4, 3, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, input.CommaInts(tc.in))
		})
	}
}
