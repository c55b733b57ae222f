package rebin

import (
	"fmt"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/frame"
)

// Accumulator builds one frame at a time from raw rows.
//
// Every height consecutive in-window rows are binned and summed element-wise
// into one output row. Rows outside the window's y range are ignored. The
// first finished frame with a nonzero height establishes the file's row
// count; Finish reconciles every later frame to it.
//
// Accumulator implements scan.RowSink.
type Accumulator struct {
	ystart  int
	ystop   int
	height  int
	policy  format.PartialPolicy
	maxBins int

	ledger *Ledger
	warn   *Warnings
	binner *RowBinner
	frame  *frame.Frame

	rawRow  int      // raw rows seen in the current frame
	grouped int      // raw rows summed into cur so far
	cur     []uint64 // output row being accumulated
	rows    int      // established frame height, 0 if none yet
	frames  int      // finished frames
}

// NewAccumulator creates an accumulator for one file.
func NewAccumulator(cfg Config, ledger *Ledger, warn *Warnings) *Accumulator {
	return &Accumulator{
		ystart:  cfg.Window.YStart,
		ystop:   cfg.Window.YStop,
		height:  cfg.Factor.Height,
		policy:  cfg.FramePolicy,
		maxBins: cfg.MaxFrameSize,
		ledger:  ledger,
		warn:    warn,
		binner:  NewRowBinner(cfg, ledger, warn),
		frame:   frame.New(0),
	}
}

// Rows returns the established frame height, or 0 if none yet.
func (a *Accumulator) Rows() int {
	return a.rows
}

// Columns returns the established frame width, or 0 if none yet.
func (a *Accumulator) Columns() int {
	return a.binner.Columns()
}

// Frames returns the number of frames finished so far.
func (a *Accumulator) Frames() int {
	return a.frames
}

// StartFrame discards the previous frame and prepares for the next point.
func (a *Accumulator) StartFrame() {
	a.frame.Reset()
	a.rawRow = 0
	a.grouped = 0
	a.cur = nil
}

// AddRow bins one raw row into the current frame.
func (a *Accumulator) AddRow(raw []uint64) error {
	r := a.rawRow
	a.rawRow++
	if r < a.ystart || r > a.ystop {
		a.ledger.IgnoreAll(raw)
		return nil
	}

	bins := a.binner.Bin(raw)
	if a.frame.Cols() != len(bins) {
		// first row of the frame, or a width change before columns are fixed
		if err := a.widen(len(bins)); err != nil {
			return err
		}
	}

	if a.grouped == 0 {
		row, err := a.appendRow()
		if err != nil {
			return err
		}
		a.cur = row
	}
	for i, v := range bins {
		a.cur[i] += v
	}

	a.grouped++
	if a.grouped == a.height {
		a.grouped = 0
		a.cur = nil
	}

	return nil
}

// Finish settles the trailing partial row group, reconciles the frame shape
// with the rest of the file and returns the frame. The frame is valid until
// the next StartFrame.
func (a *Accumulator) Finish() (*frame.Frame, error) {
	if a.grouped != 0 {
		complete := a.frame.Rows() - 1
		if !a.policy.Keep(complete) {
			for _, v := range a.frame.Row(complete) {
				a.ledger.Reclassify(v)
			}
			a.frame.Truncate(complete)
		}
		a.grouped = 0
		a.cur = nil
	}

	h := a.frame.Rows()
	switch {
	case a.rows == 0:
		a.rows = h
	case h == 0:
		// dropped acquisition point: zero-fill to the established shape
		a.frame.Reset()
		a.frame.SetCols(a.binner.Columns())
		for a.frame.Rows() < a.rows {
			if _, err := a.appendRow(); err != nil {
				return nil, err
			}
		}
	case h != a.rows:
		a.warn.Report(WarnRows, "inconsistent number of rows: got %d, want %d", h, a.rows)
		for i := a.rows; i < h; i++ {
			for _, v := range a.frame.Row(i) {
				a.ledger.Reclassify(v)
			}
		}
		a.frame.Truncate(a.rows)
		for a.frame.Rows() < a.rows {
			if _, err := a.appendRow(); err != nil {
				return nil, err
			}
		}
	}

	a.ledger.NonZero += a.frame.NonZero()
	a.frames++

	return a.frame, nil
}

// Release returns pooled scratch buffers. The accumulator must not be used
// afterwards.
func (a *Accumulator) Release() {
	a.binner.Release()
}

func (a *Accumulator) appendRow() ([]uint64, error) {
	if (a.frame.Rows()+1)*a.frame.Cols() > a.maxBins {
		return nil, fmt.Errorf("%w: %d rows of %d bins exceed %d",
			errs.ErrFrameTooLarge, a.frame.Rows()+1, a.frame.Cols(), a.maxBins)
	}

	return a.frame.AppendZeroRow(), nil
}

// widen rebuilds the frame with a new row width. It is only reached while
// every row so far has zero bins, so no counts are lost.
func (a *Accumulator) widen(cols int) error {
	rows := a.frame.Rows()
	a.frame.Reset()
	a.frame.SetCols(cols)
	for i := 0; i < rows; i++ {
		row, err := a.appendRow()
		if err != nil {
			return err
		}
		a.cur = row
	}

	return nil
}
