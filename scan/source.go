package scan

import (
	"bufio"
	"io"
)

// LineSource supplies successive text lines of an input file.
type LineSource interface {
	// ReadLine returns the next line including its terminator, if any.
	// At end of input it returns nil and io.EOF.
	ReadLine() ([]byte, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewLineSource returns a LineSource reading from r.
//
// The returned lines are freshly allocated, so callers may retain them.
func NewLineSource(r io.Reader) LineSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() ([]byte, error) {
	line, err := s.r.ReadBytes('\n')
	if len(line) > 0 {
		// a final line without terminator is still a line; EOF surfaces on the next call
		return line, nil
	}
	if err == nil {
		err = io.EOF
	}

	return nil, err
}
