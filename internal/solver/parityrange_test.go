package solver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinRemovals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []int
		want int
	}{
		{"single element", []int{7}, 0},
		{"single even element", []int{4}, 0},
		{"all even", []int{2, 4, 6, 8}, 0},
		{"all odd", []int{1, 3, 9}, 0},
		{"mixed small", []int{1, 2, 3}, 1},
		{"mixed larger", []int{1, 3, 5, 2, 4}, 2},
		{"balanced pairs", []int{1, 1, 2, 2, 3, 3}, 2},
		{"negative values", []int{-3, -2, -1}, 1},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MinRemovals(tt.in))
		})
	}
}

func TestMinRemovalsDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := []int{5, 2, 9, 4}
	MinRemovals(in)
	assert.Equal(t, []int{5, 2, 9, 4}, in)
}

func TestParityRangeSolve(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		"5",
		"1",
		"1",
		"4",
		"2 4 6 8",
		"3",
		"1 2 3",
		"5",
		"1 3 5 2 4",
		"6",
		"1 1 2 2 3 3",
	}, "\n")
	want := "0\n0\n1\n2\n2\n"

	s, ok := Lookup("2110A")
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, s.Solve(strings.NewReader(input), &out))
	assert.Equal(t, want, out.String())

	// same input again must produce the same output
	out.Reset()
	require.NoError(t, s.Solve(strings.NewReader(input), &out))
	assert.Equal(t, want, out.String())
}

func TestParityRangeSolveTruncatedInput(t *testing.T) {
	t.Parallel()
	s, ok := Lookup("2110A")
	require.True(t, ok)

	var out bytes.Buffer
	err := s.Solve(strings.NewReader("1\n3\n1 2"), &out)
	assert.Error(t, err)
}
