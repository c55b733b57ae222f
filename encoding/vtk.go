package encoding

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/frame"
	"github.com/arloliu/reflbin/internal/pool"
)

const (
	// QuantizeScale maps the uint32 count range onto 16-bit codes.
	// 2955 * ln(2^32) slightly exceeds 2^16, so the very top of the range saturates.
	QuantizeScale = 2955.0

	// MaxCode is the largest code a VTK value can carry.
	MaxCode = math.MaxUint16

	// VTKLineWidth is the length after which a VTK data line is broken.
	VTKLineWidth = 1000

	dimensionsWidth = 40
	pointDataWidth  = 20
)

// Quantize converts a count to its VTK code, round(QuantizeScale * ln(count+1)),
// saturating at MaxCode.
//
// The transform is monotonic and lossy; zero maps to zero.
func Quantize(count uint64) uint16 {
	code := math.Floor(QuantizeScale*math.Log(float64(count)+1) + 0.5)
	if code >= MaxCode {
		return MaxCode
	}

	return uint16(code)
}

// VTKEncoder writes a legacy ASCII structured-points document.
//
// The whole document is buffered in memory: the grid dimensions and the
// point count in the header are reserved as blank spans and filled in by
// Finish, after which the document is written to the underlying writer in a
// single pass.
type VTKEncoder struct {
	w          io.Writer
	buf        *pool.ByteBuffer
	dimensions Placeholder
	pointData  Placeholder
	closed     bool

	// shape of the frames written so far
	rows, cols int
	frames     int
}

// NewVTKEncoder creates a VTK encoder and writes the document header.
//
// Parameters:
//   - w: Destination of the finished document
//   - source: Input path recorded on the title line
//
// Returns:
//   - *VTKEncoder: The encoder
//   - error: errs.ErrInvalidConfig if source contains a line break
func NewVTKEncoder(w io.Writer, source string) (*VTKEncoder, error) {
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' || source[i] == '\r' {
			return nil, fmt.Errorf("%w: source name contains a line break", errs.ErrInvalidConfig)
		}
	}

	e := &VTKEncoder{
		w:   w,
		buf: pool.GetOutputBuffer(),
	}
	e.writeHeader(source)

	return e, nil
}

func (e *VTKEncoder) writeHeader(source string) {
	buf := e.buf
	_, _ = buf.WriteString("# vtk DataFile Version 2.0\n")
	_, _ = buf.WriteString("Data from " + source + "\n")
	_, _ = buf.WriteString("ASCII\n")
	_, _ = buf.WriteString("DATASET STRUCTURED_POINTS\n")

	_, _ = buf.WriteString("DIMENSIONS ")
	e.dimensions = reserve(buf, "DIMENSIONS", dimensionsWidth)
	_ = buf.WriteByte('\n')

	_, _ = buf.WriteString("ORIGIN 0 0 0\n")

	_, _ = buf.WriteString("SPACING ")
	spacing := reserve(buf, "SPACING", dimensionsWidth)
	_ = spacing.Fill(buf, "1 1 1")
	_ = buf.WriteByte('\n')

	_, _ = buf.WriteString("POINT_DATA ")
	e.pointData = reserve(buf, "POINT_DATA", pointDataWidth)
	_ = buf.WriteByte('\n')

	_, _ = buf.WriteString("SCALARS PSD unsigned_short 1\n")
	_, _ = buf.WriteString("LOOKUP_TABLE default\n")
}

// Format returns format.VTK.
func (e *VTKEncoder) Format() format.OutputFormat {
	return format.VTK
}

// WriteMetadata discards line; VTK output has no metadata section.
func (e *VTKEncoder) WriteMetadata(_ []byte) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	return nil
}

// WriteFrame writes the quantized codes of f, one line group per row.
// Every frame must have the dimensions of the first one.
func (e *VTKEncoder) WriteFrame(f *frame.Frame) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	if e.frames == 0 {
		e.rows, e.cols = f.Rows(), f.Cols()
	} else if f.Rows() != e.rows || f.Cols() != e.cols {
		return fmt.Errorf("%w: frame %d is %dx%d, want %dx%d",
			errs.ErrShapeMismatch, e.frames+1, f.Rows(), f.Cols(), e.rows, e.cols)
	}
	e.frames++

	for r := 0; r < f.Rows(); r++ {
		e.writeRow(f.Row(r))
	}

	return nil
}

// writeRow writes codes separated by spaces, breaking the line once it
// passes VTKLineWidth. The row always ends with a line break.
func (e *VTKEncoder) writeRow(values []uint64) {
	if len(values) == 0 {
		return
	}

	e.buf.Grow(len(values) * 6)
	lineStart := e.buf.Len()
	for i, v := range values {
		e.buf.B = strconv.AppendUint(e.buf.B, uint64(Quantize(v)), 10)
		if i == len(values)-1 {
			break
		}

		if e.buf.Len()-lineStart+1 > VTKLineWidth {
			_ = e.buf.WriteByte('\n')
			lineStart = e.buf.Len()
		} else {
			_ = e.buf.WriteByte(' ')
		}
	}
	_ = e.buf.WriteByte('\n')
}

// Finish patches the header with the final shape, writes the document and
// releases the buffer. Once frames were written, shape must describe them.
func (e *VTKEncoder) Finish(shape Shape) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}
	defer e.Abort()

	if e.frames > 0 && (shape.Columns != e.cols || shape.Rows != e.rows || shape.Points != e.frames) {
		return fmt.Errorf("%w: header %d %d %d, data %d %d %d", errs.ErrShapeMismatch,
			shape.Columns, shape.Rows, shape.Points, e.cols, e.rows, e.frames)
	}

	dims := fmt.Sprintf("%d %d %d", shape.Columns, shape.Rows, shape.Points)
	if err := e.dimensions.Fill(e.buf, dims); err != nil {
		return err
	}
	if err := e.pointData.Fill(e.buf, strconv.Itoa(shape.Cells())); err != nil {
		return err
	}

	if _, err := e.buf.WriteTo(e.w); err != nil {
		return fmt.Errorf("write vtk output: %w", err)
	}

	return nil
}

// Abort releases the buffer without writing anything.
func (e *VTKEncoder) Abort() {
	if e.closed {
		return
	}
	e.closed = true
	pool.PutOutputBuffer(e.buf)
	e.buf = nil
}
