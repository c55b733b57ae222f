package rebin

import (
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/internal/pool"
)

// RowBinner clips raw rows to the window's x range and sums every width
// pixels into one bin.
//
// The first row that yields any bins establishes the file's column count.
// Later rows with a different count are forced to it: extra bins are dropped
// (their counts become ignored) and missing bins are zero.
type RowBinner struct {
	xstart  int
	xstop   int
	width   int
	policy  format.PartialPolicy
	ledger  *Ledger
	warn    *Warnings
	columns int

	bins    []uint64
	release func()
}

// NewRowBinner creates a binner for one file.
func NewRowBinner(cfg Config, ledger *Ledger, warn *Warnings) *RowBinner {
	// sized for a typical row; Bin grows it up to the configured bound
	bins, release := pool.GetCountSlice(min(cfg.MaxRowLength, DefaultMaxRowLength)/cfg.Factor.Width + 1)

	return &RowBinner{
		xstart:  cfg.Window.XStart,
		xstop:   cfg.Window.XStop,
		width:   cfg.Factor.Width,
		policy:  cfg.RowPolicy,
		ledger:  ledger,
		warn:    warn,
		bins:    bins[:0],
		release: release,
	}
}

// Columns returns the established column count, or 0 if none yet.
func (b *RowBinner) Columns() int {
	return b.columns
}

// Bin bins one raw row. The returned slice is reused by the next call.
func (b *RowBinner) Bin(raw []uint64) []uint64 {
	bins := b.bins[:0]
	n := len(raw)

	lo := min(b.xstart, n)
	b.ledger.IgnoreAll(raw[:lo])

	var acc uint64
	filled := 0
	hi := min(b.xstop+1, n)
	for i := lo; i < hi; i++ {
		acc += raw[i]
		b.ledger.Record(raw[i])
		filled++
		if filled == b.width {
			bins = append(bins, acc)
			acc, filled = 0, 0
		}
	}
	if hi < n {
		b.ledger.IgnoreAll(raw[hi:])
	}

	if filled != 0 {
		if b.policy.Keep(len(bins)) {
			bins = append(bins, acc)
		} else {
			b.ledger.Reclassify(acc)
		}
	}

	switch {
	case b.columns == 0:
		b.columns = len(bins)
	case len(bins) != b.columns:
		b.warn.Report(WarnColumns, "ignoring inconsistent number of columns: got %d, want %d", len(bins), b.columns)
		if len(bins) > b.columns {
			for _, v := range bins[b.columns:] {
				b.ledger.Reclassify(v)
			}
			bins = bins[:b.columns]
		} else {
			for len(bins) < b.columns {
				bins = append(bins, 0)
			}
		}
	}

	b.bins = bins

	return bins
}

// Release returns the binner's scratch buffer to the pool. The binner must
// not be used afterwards.
func (b *RowBinner) Release() {
	if b.release != nil {
		b.release()
		b.release = nil
	}
	b.bins = nil
}
