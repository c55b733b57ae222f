package encoding

import (
	"fmt"
	"io"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/frame"
)

// Shape is the final extent of a converted scan.
type Shape struct {
	// Columns is the number of bins per output row.
	Columns int
	// Rows is the number of output rows per frame.
	Rows int
	// Points is the number of frames encoded.
	Points int
}

// Cells returns the total number of values in the volume.
func (s Shape) Cells() int {
	return s.Columns * s.Rows * s.Points
}

// Encoder serializes the frames of one scan file.
//
// WriteMetadata and WriteFrame may be interleaved in stream order. Either
// Finish or Abort must be called once: Finish flushes any buffered output to
// the underlying writer, Abort drops it. Both release pooled buffers. Calls
// after either return errs.ErrEncoderClosed.
type Encoder interface {
	// Format returns the output format produced by the encoder.
	Format() format.OutputFormat

	// WriteMetadata passes a non-data input line through to the output.
	// Formats without a metadata section discard it.
	WriteMetadata(line []byte) error

	// WriteFrame encodes all rows of f in order.
	WriteFrame(f *frame.Frame) error

	// Finish completes the document using the final scan shape.
	Finish(shape Shape) error

	// Abort discards buffered output. It is a no-op on a closed encoder.
	Abort()
}

var (
	_ Encoder = (*ICPEncoder)(nil)
	_ Encoder = (*VTKEncoder)(nil)
)

// NewEncoder creates the encoder for the given output format.
//
// Parameters:
//   - f: Output format
//   - w: Destination of the encoded document
//   - source: Input path, recorded in formats that carry one
//
// Returns:
//   - Encoder: The format encoder
//   - error: errs.ErrUnknownFormat for an unsupported format
func NewEncoder(f format.OutputFormat, w io.Writer, source string) (Encoder, error) {
	switch f {
	case format.ICP:
		return NewICPEncoder(w), nil
	case format.VTK:
		return NewVTKEncoder(w, source)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownFormat, f)
	}
}
