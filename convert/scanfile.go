package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/reflbin/encoding"
	"github.com/arloliu/reflbin/frame"
	"github.com/arloliu/reflbin/internal/monitoring"
	"github.com/arloliu/reflbin/rebin"
	"github.com/arloliu/reflbin/scan"
)

// motorPrefix marks the last header line before the column header.
var motorPrefix = []byte(" Mot:")

// ScanFile carries all mutable state of one file conversion: tokenizer,
// accumulator, ledger, warnings and encoder. Nothing in it outlives the file.
type ScanFile struct {
	source string
	cfg    *Config

	ledger rebin.Ledger
	warn   *rebin.Warnings
	acc    *rebin.Accumulator
	tok    *scan.Tokenizer
	enc    encoding.Encoder

	points int // frames encoded
}

// NewScanFile prepares the conversion of one input stream into w.
func NewScanFile(cfg *Config, source string, r io.Reader, w io.Writer) (*ScanFile, error) {
	sf := &ScanFile{source: source, cfg: cfg}
	sf.warn = rebin.NewWarnings(func(wr rebin.Warning) {
		monitoring.Logf("%s: warning: %s", source, wr.Message)
	})

	tok, err := scan.NewTokenizer(scan.NewLineSource(r),
		scan.WithMaxRowLength(cfg.Binning.MaxRowLength),
		scan.WithObserver(&sf.ledger),
	)
	if err != nil {
		return nil, err
	}
	sf.tok = tok

	enc, err := encoding.NewEncoder(cfg.Format, w, source)
	if err != nil {
		return nil, err
	}
	sf.enc = enc
	sf.acc = rebin.NewAccumulator(cfg.Binning, &sf.ledger, sf.warn)

	return sf, nil
}

// Run converts the whole input and finishes the encoder. The ScanFile must
// not be reused afterwards.
func (sf *ScanFile) Run() error {
	defer sf.acc.Release()

	if err := sf.run(); err != nil {
		sf.enc.Abort()
		return err
	}

	if !sf.ledger.Balanced() {
		sf.warn.Report(rebin.WarnAccounting, "!!!recorded+ignored != %d", sf.ledger.Total)
	}

	return sf.enc.Finish(sf.Shape())
}

func (sf *ScanFile) run() error {
	if err := sf.copyHeader(); err != nil {
		return err
	}

	line, err := sf.tok.NextLine()
	if err != nil {
		return err
	}
	if line == nil {
		return nil
	}
	if err := sf.enc.WriteMetadata(line); err != nil {
		return err
	}

	for !sf.tok.EOF() {
		sf.acc.StartFrame()
		if _, err := sf.tok.ScanFrame(sf.acc); err != nil {
			return fmt.Errorf("point %d: %w", sf.acc.Frames()+1, err)
		}

		f, err := sf.acc.Finish()
		if err != nil {
			return fmt.Errorf("point %d: %w", sf.acc.Frames()+1, err)
		}
		if err := sf.writeFrame(f); err != nil {
			return err
		}

		if next := sf.tok.Line(); len(next) > 0 {
			if err := sf.enc.WriteMetadata(next); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyHeader passes header lines through up to the motor line and the
// column header that follows it.
func (sf *ScanFile) copyHeader() error {
	for {
		line, err := sf.tok.NextLine()
		if err != nil {
			return err
		}
		if line == nil {
			return nil
		}
		if err := sf.enc.WriteMetadata(line); err != nil {
			return err
		}
		if bytes.HasPrefix(line, motorPrefix) {
			break
		}
	}

	line, err := sf.tok.NextLine()
	if err != nil || line == nil {
		return err
	}

	return sf.enc.WriteMetadata(line)
}

func (sf *ScanFile) writeFrame(f *frame.Frame) error {
	// nothing to encode before the first non-empty frame fixes the shape
	if f.Len() == 0 {
		return nil
	}

	if sf.cfg.Format.ColumnMajor() {
		f.Transpose()
	}
	if err := sf.enc.WriteFrame(f); err != nil {
		return err
	}
	sf.points++

	return nil
}

// Shape returns the extent of the output so far.
func (sf *ScanFile) Shape() encoding.Shape {
	return encoding.Shape{
		Columns: sf.acc.Columns(),
		Rows:    sf.acc.Rows(),
		Points:  sf.points,
	}
}

// Ledger returns a copy of the accounting counters.
func (sf *ScanFile) Ledger() rebin.Ledger {
	return sf.ledger
}

// Warnings returns the data-integrity warnings raised so far.
func (sf *ScanFile) Warnings() []rebin.Warning {
	return sf.warn.List()
}
