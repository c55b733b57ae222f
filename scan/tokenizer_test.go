package scan

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/arloliu/reflbin/errs"
	"github.com/stretchr/testify/require"
)

type rowCollector struct {
	rows [][]uint64
	err  error
}

func (c *rowCollector) AddRow(values []uint64) error {
	if c.err != nil {
		return c.err
	}
	c.rows = append(c.rows, append([]uint64(nil), values...))

	return nil
}

type sumObserver struct {
	sum     uint64
	count   int
	dropped []uint64
}

func (o *sumObserver) Observe(v uint64) {
	o.sum += v
	o.count++
}

func (o *sumObserver) Abandon(values []uint64) {
	o.dropped = append(o.dropped, values...)
}

func newTokenizer(t *testing.T, input string, opts ...Option) *Tokenizer {
	t.Helper()
	tok, err := NewTokenizer(NewLineSource(strings.NewReader(input)), opts...)
	require.NoError(t, err)

	return tok
}

func TestScanFrame(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		result  Result
		rows    [][]uint64
		pending string
		eof     bool
	}{
		{
			name:   "three rows",
			input:  "1,2,3;\n4,5,6;\n7,8,9\n",
			result: FrameComplete,
			rows:   [][]uint64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			eof:    true,
		},
		{
			name:   "row wrapped over lines",
			input:  "10,20,\n30;\n40\n",
			result: FrameComplete,
			rows:   [][]uint64{{10, 20, 30}, {40}},
			eof:    true,
		},
		{
			name:    "metadata line follows frame",
			input:   "1,2\n 2.5 3.0\n",
			result:  FrameComplete,
			rows:    [][]uint64{{1, 2}},
			pending: " 2.5 3.0\n",
		},
		{
			name:    "dropped frame stops on metadata",
			input:   " 3 12.5\n",
			result:  EndOfBlock,
			pending: " 3 12.5\n",
		},
		{
			name:    "dropped frame stops on float",
			input:   "12.5 1\n",
			result:  EndOfBlock,
			pending: "12.5 1\n",
		},
		{
			name:   "last line without terminator",
			input:  "1,2;3,4",
			result: EndOfInput,
			rows:   [][]uint64{{1, 2}, {3, 4}},
			eof:    true,
		},
		{
			name:   "crlf line endings",
			input:  "1,2;\r\n3,4\r\n",
			result: FrameComplete,
			rows:   [][]uint64{{1, 2}, {3, 4}},
			eof:    true,
		},
		{
			name:   "blank lines inside frame",
			input:  "1,2;\n\n3,4\n",
			result: FrameComplete,
			rows:   [][]uint64{{1, 2}, {3, 4}},
			eof:    true,
		},
		{
			name:   "empty input",
			input:  "",
			result: EndOfInput,
			eof:    true,
		},
		{
			name:   "max pixel value",
			input:  "4294967295,0\n",
			result: FrameComplete,
			rows:   [][]uint64{{MaxPixelValue, 0}},
			eof:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := newTokenizer(t, tt.input)
			sink := &rowCollector{}

			res, err := tok.ScanFrame(sink)
			require.NoError(t, err)
			require.Equal(t, tt.result, res)
			require.Equal(t, tt.rows, sink.rows)
			require.Equal(t, tt.pending, string(tok.Line()))
			require.Equal(t, tt.eof, tok.EOF())
			require.Equal(t, StateIdle, tok.State())
		})
	}
}

func TestScanFrame_Sequence(t *testing.T) {
	tok := newTokenizer(t, "1,2\n 0.5 1\n3;4\n")
	sink := &rowCollector{}

	res, err := tok.ScanFrame(sink)
	require.NoError(t, err)
	require.Equal(t, FrameComplete, res)
	require.Equal(t, " 0.5 1\n", string(tok.Line()))

	res, err = tok.ScanFrame(sink)
	require.NoError(t, err)
	require.Equal(t, FrameComplete, res)
	require.Equal(t, [][]uint64{{1, 2}, {3}, {4}}, sink.rows)
	require.Nil(t, tok.Line())
	require.True(t, tok.EOF())

	res, err = tok.ScanFrame(sink)
	require.NoError(t, err)
	require.Equal(t, EndOfInput, res)
	require.Len(t, sink.rows, 3)
}

func TestScanFrame_Observer(t *testing.T) {
	obs := &sumObserver{}
	tok := newTokenizer(t, "1,2,3;\n4,5,6;\n7,8,9\n", WithObserver(obs))

	_, err := tok.ScanFrame(&rowCollector{})
	require.NoError(t, err)
	require.Equal(t, uint64(45), obs.sum)
	require.Equal(t, 9, obs.count)
}

func TestScanFrame_StopDropsOpenRow(t *testing.T) {
	obs := &sumObserver{}
	tok := newTokenizer(t, "1,2,x\n", WithObserver(obs))
	sink := &rowCollector{}

	res, err := tok.ScanFrame(sink)
	require.NoError(t, err)
	require.Equal(t, EndOfBlock, res)
	require.Empty(t, sink.rows)
	// emitted values were observed even though the row never finished
	require.Equal(t, uint64(3), obs.sum)
	require.Equal(t, []uint64{1, 2}, obs.dropped)
}

func TestScanFrame_OpenRowAbandoned(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		result  Result
		rows    [][]uint64
		dropped []uint64
	}{
		{
			name:    "block stops mid row",
			input:   "1,2;\n10,20,x\n",
			result:  EndOfBlock,
			rows:    [][]uint64{{1, 2}},
			dropped: []uint64{10, 20},
		},
		{
			name:    "input truncated after separator",
			input:   "1,2;\n4,5,",
			result:  EndOfInput,
			rows:    [][]uint64{{1, 2}},
			dropped: []uint64{4, 5},
		},
		{
			name:    "input truncated after line break",
			input:   "1,2;\n4,5,\n",
			result:  EndOfInput,
			rows:    [][]uint64{{1, 2}},
			dropped: []uint64{4, 5},
		},
		{
			name:   "finished rows leave nothing behind",
			input:  "1,2;\n3",
			result: EndOfInput,
			rows:   [][]uint64{{1, 2}, {3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &sumObserver{}
			tok := newTokenizer(t, tt.input, WithObserver(obs))
			sink := &rowCollector{}

			res, err := tok.ScanFrame(sink)
			require.NoError(t, err)
			require.Equal(t, tt.result, res)
			require.Equal(t, tt.rows, sink.rows)
			require.Equal(t, tt.dropped, obs.dropped)
		})
	}
}

func TestScanFrame_Overflow(t *testing.T) {
	tok := newTokenizer(t, "4294967296\n")

	_, err := tok.ScanFrame(&rowCollector{})
	require.ErrorIs(t, err, errs.ErrNumberOverflow)
}

func TestScanFrame_RowTooLong(t *testing.T) {
	tok := newTokenizer(t, "1,2,3\n", WithMaxRowLength(2))

	_, err := tok.ScanFrame(&rowCollector{})
	require.ErrorIs(t, err, errs.ErrRowTooLong)
}

func TestScanFrame_SinkError(t *testing.T) {
	sinkErr := errors.New("sink full")
	tok := newTokenizer(t, "1;2\n")

	_, err := tok.ScanFrame(&rowCollector{err: sinkErr})
	require.ErrorIs(t, err, sinkErr)
}

type failingSource struct {
	lines []string
	err   error
}

func (s *failingSource) ReadLine() ([]byte, error) {
	if len(s.lines) == 0 {
		return nil, s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]

	return []byte(line), nil
}

func TestScanFrame_ReadError(t *testing.T) {
	readErr := errors.New("disk gone")
	tok, err := NewTokenizer(&failingSource{lines: []string{"1,2,\n"}, err: readErr})
	require.NoError(t, err)

	_, err = tok.ScanFrame(&rowCollector{})
	require.ErrorIs(t, err, readErr)
	require.Contains(t, err.Error(), "read line")
}

func TestScanFrame_NumberSplitAcrossChunks(t *testing.T) {
	tok, err := NewTokenizer(&failingSource{lines: []string{"12", "34,5\n"}, err: errEOF()})
	require.NoError(t, err)
	sink := &rowCollector{}

	res, err := tok.ScanFrame(sink)
	require.NoError(t, err)
	require.Equal(t, FrameComplete, res)
	require.Equal(t, [][]uint64{{1234, 5}}, sink.rows)
}

func TestNextLine(t *testing.T) {
	tok := newTokenizer(t, "header\n Mot: a1\ncols\n")

	var lines []string
	for {
		line, err := tok.NextLine()
		require.NoError(t, err)
		if line == nil {
			break
		}
		lines = append(lines, string(line))
	}
	require.Equal(t, []string{"header\n", " Mot: a1\n", "cols\n"}, lines)
	require.True(t, tok.EOF())
}

func TestNewTokenizer_InvalidOption(t *testing.T) {
	_, err := NewTokenizer(NewLineSource(strings.NewReader("")), WithMaxRowLength(0))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func errEOF() error { return io.EOF }
