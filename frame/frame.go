// Package frame holds the 2-D bin matrix of one detector point.
package frame

// Frame is a rows×cols matrix of bin counts stored in row-major order.
//
// The backing storage is kept across Reset calls so one Frame can be reused
// for every point of a file.
type Frame struct {
	rows int
	cols int
	data []uint64
}

// New creates an empty frame with room for capacity bins.
func New(capacity int) *Frame {
	return &Frame{data: make([]uint64, 0, capacity)}
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return f.cols }

// Len returns the number of bins, Rows()*Cols().
func (f *Frame) Len() int { return len(f.data) }

// Data returns the bins in row-major order. The slice aliases the frame.
func (f *Frame) Data() []uint64 { return f.data }

// Row returns row i. The slice aliases the frame.
func (f *Frame) Row(i int) []uint64 {
	return f.data[i*f.cols : (i+1)*f.cols]
}

// At returns the bin at row r, column c.
func (f *Frame) At(r, c int) uint64 {
	return f.data[r*f.cols+c]
}

// Reset empties the frame, keeping its storage.
func (f *Frame) Reset() {
	f.rows, f.cols = 0, 0
	f.data = f.data[:0]
}

// SetCols fixes the row width of an empty frame.
// It panics if the frame already holds rows.
func (f *Frame) SetCols(cols int) {
	if f.rows != 0 {
		panic("frame: SetCols on non-empty frame")
	}
	f.cols = cols
}

// AppendZeroRow appends a row of zeros and returns it for accumulation.
func (f *Frame) AppendZeroRow() []uint64 {
	start := len(f.data)
	f.data = append(f.data, make([]uint64, f.cols)...)
	f.rows++

	return f.data[start:]
}

// Truncate drops every row from index rows onwards.
func (f *Frame) Truncate(rows int) {
	if rows >= f.rows {
		return
	}
	f.rows = rows
	f.data = f.data[:rows*f.cols]
}

// NonZero returns the number of bins holding a nonzero count.
func (f *Frame) NonZero() int {
	n := 0
	for _, v := range f.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// Sum returns the total of all bins.
func (f *Frame) Sum() uint64 {
	var s uint64
	for _, v := range f.data {
		s += v
	}

	return s
}

// Transpose transposes the frame in place, swapping its row and column counts.
func (f *Frame) Transpose() {
	Transpose(f.data, f.rows, f.cols)
	f.rows, f.cols = f.cols, f.rows
}
