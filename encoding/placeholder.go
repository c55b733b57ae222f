package encoding

import (
	"fmt"
	"strings"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/internal/pool"
)

// Placeholder is a fixed-width span of a buffered document whose value is
// written after the rest of the document is known.
type Placeholder struct {
	// Name identifies the field in errors.
	Name string
	// Offset is the byte position of the span in the buffer.
	Offset int
	// Width is the number of bytes reserved.
	Width int
}

// reserve writes width blanks to buf and returns the span covering them.
func reserve(buf *pool.ByteBuffer, name string, width int) Placeholder {
	p := Placeholder{Name: name, Offset: buf.Len(), Width: width}
	_, _ = buf.WriteString(strings.Repeat(" ", width))

	return p
}

// Fill overwrites the span with value, left-aligned and blank-padded.
func (p Placeholder) Fill(buf *pool.ByteBuffer, value string) error {
	if len(value) > p.Width {
		return fmt.Errorf("%w: %s needs %d bytes, %d reserved", errs.ErrPlaceholderOverflow, p.Name, len(value), p.Width)
	}

	span := make([]byte, p.Width)
	n := copy(span, value)
	for i := n; i < p.Width; i++ {
		span[i] = ' '
	}
	buf.Overwrite(p.Offset, span)

	return nil
}
