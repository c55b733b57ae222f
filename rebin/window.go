package rebin

import (
	"fmt"

	"github.com/arloliu/reflbin/errs"
)

// DefaultStop is the inclusive upper pixel index of the unclipped window.
const DefaultStop = 1_000_000

// Window is the inclusive, 0-origin pixel range [XStart,XStop]×[YStart,YStop]
// kept by the binning stages. Pixels outside it are ignored.
type Window struct {
	XStart, XStop int
	YStart, YStop int
}

// FullWindow returns a window that clips nothing.
func FullWindow() Window {
	return Window{XStart: 0, XStop: DefaultStop, YStart: 0, YStop: DefaultStop}
}

// Validate checks that both ranges are non-empty and non-negative.
func (w Window) Validate() error {
	if w.XStart < 0 || w.XStop < w.XStart {
		return fmt.Errorf("%w: x %d-%d", errs.ErrInvalidRange, w.XStart, w.XStop)
	}
	if w.YStart < 0 || w.YStop < w.YStart {
		return fmt.Errorf("%w: y %d-%d", errs.ErrInvalidRange, w.YStart, w.YStop)
	}

	return nil
}

// ContainsRow reports whether raw row index r lies inside the window.
func (w Window) ContainsRow(r int) bool {
	return r >= w.YStart && r <= w.YStop
}

// Factor is the integer down-sampling multiple along each axis.
type Factor struct {
	Width  int // pixels per bin along x
	Height int // rows per bin along y
}

// DefaultFactor keeps every pixel and sums all rows of a frame into one.
func DefaultFactor() Factor {
	return Factor{Width: 1, Height: 1_000_000}
}

// Validate checks that both multiples are positive.
func (f Factor) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidBinning, f.Width, f.Height)
	}

	return nil
}
