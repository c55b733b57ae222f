package scan

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/internal/options"
)

// MaxPixelValue is the largest count a single pixel token may hold.
// Longer tokens fail with errs.ErrNumberOverflow instead of wrapping.
const MaxPixelValue = math.MaxUint32

// DefaultMaxRowLength is the default bound on raw values per row.
const DefaultMaxRowLength = 2048

// Result tells how ScanFrame stopped.
type Result uint8

const (
	// FrameComplete means a line ended directly after a number. Line holds
	// the line following the frame, or nil at end of input.
	FrameComplete Result = iota
	// EndOfBlock means a character outside the data grammar was found.
	// Line holds the line containing it.
	EndOfBlock
	// EndOfInput means the input is exhausted. A number pending at that
	// point was flushed as the last pixel of the frame.
	EndOfInput
)

func (r Result) String() string {
	switch r {
	case FrameComplete:
		return "FrameComplete"
	case EndOfBlock:
		return "EndOfBlock"
	case EndOfInput:
		return "EndOfInput"
	default:
		return "Unknown"
	}
}

// RowSink receives finished raw rows.
type RowSink interface {
	// AddRow is called once per finished row. The slice is reused by the
	// tokenizer after AddRow returns.
	AddRow(values []uint64) error
}

// Observer is notified of every value the tokenizer emits.
type Observer interface {
	// Observe is called for each emitted value.
	Observe(value uint64)
	// Abandon is called with the values of a row that was still open when
	// the block or the input ended. They never reach the RowSink.
	Abandon(values []uint64)
}

// Option configures a Tokenizer.
type Option = options.Option[*Tokenizer]

// WithMaxRowLength bounds the number of raw values in a row.
func WithMaxRowLength(n int) Option {
	return options.New(func(t *Tokenizer) error {
		if n <= 0 {
			return fmt.Errorf("%w: max row length %d", errs.ErrInvalidConfig, n)
		}
		t.maxRow = n

		return nil
	})
}

// WithObserver registers an observer for emitted values.
func WithObserver(o Observer) Option {
	return options.NoError(func(t *Tokenizer) {
		t.observer = o
	})
}

// Tokenizer splits the data block of a scan file into rows and frames.
//
// Note: The Tokenizer is NOT thread-safe.
type Tokenizer struct {
	src      LineSource
	observer Observer
	maxRow   int

	line []byte // current line, nil at end of input
	pos  int
	eof  bool

	state State
	value uint64
	row   []uint64
}

// NewTokenizer creates a tokenizer reading lines from src.
func NewTokenizer(src LineSource, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		src:    src,
		maxRow: DefaultMaxRowLength,
	}
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}
	t.row = make([]uint64, 0, min(t.maxRow, DefaultMaxRowLength))

	return t, nil
}

// NextLine advances to the next line and returns it, or nil at end of input.
// It is used to walk the file header before the data block.
func (t *Tokenizer) NextLine() ([]byte, error) {
	if err := t.load(); err != nil {
		return nil, err
	}

	return t.line, nil
}

// Line returns the pending line: the line the last ScanFrame stopped on or
// the one following the last frame. It is nil at end of input.
func (t *Tokenizer) Line() []byte {
	return t.line
}

// EOF reports whether the input is exhausted.
func (t *Tokenizer) EOF() bool {
	return t.eof
}

// State returns the current state of the machine.
func (t *Tokenizer) State() State {
	return t.state
}

// ScanFrame reads the next line and tokenizes one frame, handing each
// finished row to sink.
//
// A frame with zero rows is valid: it means the block ended before any data,
// typically because an acquisition point was dropped.
func (t *Tokenizer) ScanFrame(sink RowSink) (Result, error) {
	t.reset()
	if err := t.load(); err != nil {
		return EndOfInput, err
	}

	for {
		cls := classEndOfLine
		var c byte
		if t.pos < len(t.line) {
			c = t.line[t.pos]
			cls = classify(c)
		}

		tr := step(t.state, cls)
		t.state = tr.next

		switch tr.act {
		case ActDigit:
			if err := t.accumulate(c); err != nil {
				return EndOfBlock, err
			}
			t.pos++
		case ActSkip:
			t.pos++
		case ActPixel:
			if err := t.emit(); err != nil {
				return EndOfBlock, err
			}
			t.pos++
		case ActRow:
			if err := t.emit(); err != nil {
				return EndOfBlock, err
			}
			if err := t.finishRow(sink); err != nil {
				return EndOfBlock, err
			}
			t.pos++
		case ActFrame:
			if err := t.emit(); err != nil {
				return FrameComplete, err
			}
			if err := t.load(); err != nil {
				return FrameComplete, err
			}
			if err := t.finishRow(sink); err != nil {
				return FrameComplete, err
			}
			t.state = StateIdle

			return FrameComplete, nil
		case ActNextLine:
			if err := t.load(); err != nil {
				return EndOfInput, err
			}
			if !t.eof {
				continue
			}
			if t.state == StateInNumber {
				if err := t.emit(); err != nil {
					return EndOfInput, err
				}
				if err := t.finishRow(sink); err != nil {
					return EndOfInput, err
				}
			}
			// truncated after a separator
			t.abandonRow()
			t.state = StateIdle

			return EndOfInput, nil
		case ActStop:
			t.value = 0
			t.abandonRow()

			return EndOfBlock, nil
		}
	}
}

func (t *Tokenizer) reset() {
	t.state = StateIdle
	t.value = 0
	t.row = t.row[:0]
}

// load replaces the current line with the next one from the source.
func (t *Tokenizer) load() error {
	t.pos = 0
	if t.eof {
		t.line = nil
		return nil
	}

	line, err := t.src.ReadLine()
	if err != nil {
		t.line = nil
		if errors.Is(err, io.EOF) {
			t.eof = true
			return nil
		}

		return fmt.Errorf("read line: %w", err)
	}
	t.line = line

	return nil
}

func (t *Tokenizer) accumulate(c byte) error {
	d := uint64(c - '0')
	if t.value > (MaxPixelValue-d)/10 {
		return fmt.Errorf("%w: token exceeds %d", errs.ErrNumberOverflow, uint64(MaxPixelValue))
	}
	t.value = t.value*10 + d

	return nil
}

func (t *Tokenizer) emit() error {
	if len(t.row) >= t.maxRow {
		return fmt.Errorf("%w: more than %d values", errs.ErrRowTooLong, t.maxRow)
	}
	t.row = append(t.row, t.value)
	if t.observer != nil {
		t.observer.Observe(t.value)
	}
	t.value = 0

	return nil
}

func (t *Tokenizer) abandonRow() {
	if len(t.row) == 0 {
		return
	}
	if t.observer != nil {
		t.observer.Abandon(t.row)
	}
	t.row = t.row[:0]
}

func (t *Tokenizer) finishRow(sink RowSink) error {
	err := sink.AddRow(t.row)
	t.row = t.row[:0]

	return err
}
