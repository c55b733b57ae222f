package frame

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// naiveTranspose is the out-of-place reference.
func naiveTranspose(data []uint64, rows, cols int) []uint64 {
	out := make([]uint64, len(data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = data[i*cols+j]
		}
	}

	return out
}

func sequence(n int) []uint64 {
	s := make([]uint64, n)
	for i := range s {
		s[i] = uint64(i + 1)
	}

	return s
}

func TestTranspose_MatchesReference(t *testing.T) {
	shapes := [][2]int{
		{2, 2}, {2, 3}, {3, 2}, {3, 3}, {4, 6}, {5, 7}, {7, 5}, {16, 3}, {31, 17}, {64, 64},
	}
	for _, s := range shapes {
		rows, cols := s[0], s[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			data := sequence(rows * cols)
			want := naiveTranspose(data, rows, cols)

			Transpose(data, rows, cols)
			require.Equal(t, want, data)
		})
	}
}

func TestTranspose_Twice(t *testing.T) {
	for _, s := range [][2]int{{2, 5}, {9, 4}, {13, 13}} {
		rows, cols := s[0], s[1]
		orig := sequence(rows * cols)
		data := append([]uint64(nil), orig...)

		Transpose(data, rows, cols)
		Transpose(data, cols, rows)
		require.Equal(t, orig, data, "%dx%d", rows, cols)
	}
}

func TestTranspose_Vectors(t *testing.T) {
	row := []uint64{1, 2, 3, 4}
	Transpose(row, 1, 4)
	require.Equal(t, []uint64{1, 2, 3, 4}, row)

	col := []uint64{5, 6, 7}
	Transpose(col, 3, 1)
	require.Equal(t, []uint64{5, 6, 7}, col)

	require.NotPanics(t, func() { Transpose(nil, 0, 0) })
}

func TestTranspose_ShortBuffer(t *testing.T) {
	require.Panics(t, func() { Transpose(make([]uint64, 3), 2, 2) })
}
