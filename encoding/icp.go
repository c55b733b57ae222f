package encoding

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/frame"
	"github.com/arloliu/reflbin/internal/pool"
)

// ICPLineWidth is the maximum ICP line length, including the leading space
// and any trailing comma.
const ICPLineWidth = 78

// ICPEncoder writes frames as wrapped comma-separated rows.
//
// Output is staged in a pooled buffer and flushed to the writer whenever the
// buffer grows past pool.OutputBufferDefaultSize, so memory use stays bounded
// regardless of scan length.
type ICPEncoder struct {
	w      io.Writer
	buf    *pool.ByteBuffer
	line   []byte
	closed bool
}

// NewICPEncoder creates an ICP encoder writing to w.
func NewICPEncoder(w io.Writer) *ICPEncoder {
	return &ICPEncoder{
		w:    w,
		buf:  pool.GetOutputBuffer(),
		line: make([]byte, 0, ICPLineWidth+24),
	}
}

// Format returns format.ICP.
func (e *ICPEncoder) Format() format.OutputFormat {
	return format.ICP
}

// WriteMetadata copies line to the output, adding a line break if it has none.
func (e *ICPEncoder) WriteMetadata(line []byte) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	_, _ = e.buf.Write(line)
	if len(line) == 0 || line[len(line)-1] != '\n' {
		_ = e.buf.WriteByte('\n')
	}

	return e.maybeFlush()
}

// WriteFrame writes every row of f as one wrapped record.
func (e *ICPEncoder) WriteFrame(f *frame.Frame) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	for r := 0; r < f.Rows(); r++ {
		e.writeRow(f.Row(r))
	}

	return e.maybeFlush()
}

// Finish flushes the remaining output and releases the buffer.
// The shape is not recorded in ICP output.
func (e *ICPEncoder) Finish(_ Shape) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}
	err := e.flush()
	e.Abort()

	return err
}

// Abort releases the buffer, dropping output not yet flushed. Output already
// flushed to the writer stays there.
func (e *ICPEncoder) Abort() {
	if e.closed {
		return
	}
	e.closed = true
	pool.PutOutputBuffer(e.buf)
	e.buf = nil
}

// writeRow appends one record. Each number is written with a trailing comma;
// when the line then exceeds ICPLineWidth the number moves to a fresh line.
// The last number is measured without its comma, which becomes the line break.
func (e *ICPEncoder) writeRow(values []uint64) {
	if len(values) == 0 {
		return
	}

	line := append(e.line[:0], ' ')
	for i, v := range values {
		start := len(line)
		line = strconv.AppendUint(line, v, 10)
		line = append(line, ',')

		width := len(line)
		if i == len(values)-1 {
			width--
		}

		// a lone number wider than the line stays where it is
		if width > ICPLineWidth && start > 1 {
			_, _ = e.buf.Write(line[:start])
			_ = e.buf.WriteByte('\n')
			line = append(line[:1], line[start:]...)
		}
	}

	line[len(line)-1] = '\n'
	_, _ = e.buf.Write(line)
	e.line = line[:0]
}

func (e *ICPEncoder) maybeFlush() error {
	if e.buf.Len() < pool.OutputBufferDefaultSize {
		return nil
	}

	return e.flush()
}

func (e *ICPEncoder) flush() error {
	if e.buf.Len() == 0 {
		return nil
	}

	if _, err := e.buf.WriteTo(e.w); err != nil {
		return fmt.Errorf("write icp output: %w", err)
	}
	e.buf.Reset()

	return nil
}
