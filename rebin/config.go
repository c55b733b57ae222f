package rebin

import (
	"fmt"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
)

// Default bounds on a single row and frame.
const (
	DefaultMaxRowLength = 2048
	DefaultMaxFrameSize = 2048 * 2048
)

// Config holds the binning parameters shared by RowBinner and Accumulator.
type Config struct {
	Window       Window
	Factor       Factor
	RowPolicy    format.PartialPolicy // partial bins at the end of a row
	FramePolicy  format.PartialPolicy // partial row groups at the end of a frame
	MaxRowLength int                  // raw values per row
	MaxFrameSize int                  // bins per frame
}

// DefaultConfig returns the configuration used when no option overrides it.
func DefaultConfig() Config {
	return Config{
		Window:       FullWindow(),
		Factor:       DefaultFactor(),
		RowPolicy:    format.KeepIfSole,
		FramePolicy:  format.KeepIfSole,
		MaxRowLength: DefaultMaxRowLength,
		MaxFrameSize: DefaultMaxFrameSize,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if err := c.Factor.Validate(); err != nil {
		return err
	}
	for _, p := range []format.PartialPolicy{c.RowPolicy, c.FramePolicy} {
		if p != format.KeepIfSole && p != format.KeepAlways && p != format.Drop {
			return fmt.Errorf("%w: partial policy %d", errs.ErrInvalidConfig, p)
		}
	}
	if c.MaxRowLength <= 0 {
		return fmt.Errorf("%w: max row length %d", errs.ErrInvalidConfig, c.MaxRowLength)
	}
	if c.MaxFrameSize <= 0 {
		return fmt.Errorf("%w: max frame size %d", errs.ErrInvalidConfig, c.MaxFrameSize)
	}

	return nil
}
