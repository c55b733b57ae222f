package frame

// Transpose permutes the row-major rows×cols matrix in data into its
// cols×rows transpose without a scratch copy.
//
// The element at index k = i*cols + j moves to j*rows + i, which equals
// k*rows mod (n-1) for every k except the last. The permutation is applied
// cycle by cycle, each cycle being rotated once starting from its smallest
// index. Vectors (rows or cols equal to 1) are left untouched since their
// layout does not change.
func Transpose(data []uint64, rows, cols int) {
	if rows <= 1 || cols <= 1 {
		return
	}

	n := rows * cols
	if len(data) < n {
		panic("frame: transpose of short buffer")
	}

	last := n - 1
	dest := func(k int) int { return k * rows % last }

	for start := 1; start < last; start++ {
		next := dest(start)
		for next > start {
			next = dest(next)
		}
		if next < start {
			// cycle already rotated from its smallest member
			continue
		}

		val := data[start]
		cur := start
		for {
			d := dest(cur)
			data[d], val = val, data[d]
			cur = d
			if cur == start {
				break
			}
		}
	}
}
