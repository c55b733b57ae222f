package convert

import (
	"fmt"

	"github.com/arloliu/reflbin/compress"
	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/internal/options"
	"github.com/arloliu/reflbin/rebin"
)

// Config holds the settings of a Converter.
type Config struct {
	Binning           rebin.Config
	Format            format.OutputFormat
	OutputDir         string // empty means alongside the input
	OutputCompression format.CompressionType
}

// Option configures a Converter.
type Option = options.Option[*Config]

// DefaultConfig returns the settings used when no option overrides them:
// bins of 1 pixel by all rows, the full window, ICP output next to the input,
// no output compression.
func DefaultConfig() Config {
	return Config{
		Binning:           rebin.DefaultConfig(),
		Format:            format.ICP,
		OutputCompression: format.CompressionNone,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Binning.Validate(); err != nil {
		return err
	}
	if c.Format != format.ICP && c.Format != format.VTK {
		return fmt.Errorf("%w: %s", errs.ErrUnknownFormat, c.Format)
	}
	if _, err := compress.GetCodec(c.OutputCompression); err != nil {
		return err
	}

	return nil
}

// WithBinning sets the bin size: width raw pixels per bin along a row and
// height raw rows per output row.
func WithBinning(width, height int) Option {
	return options.New(func(c *Config) error {
		f := rebin.Factor{Width: width, Height: height}
		if err := f.Validate(); err != nil {
			return err
		}
		c.Binning.Factor = f

		return nil
	})
}

// WithWindowX keeps only pixels lo..hi of each row (0-origin, inclusive).
func WithWindowX(lo, hi int) Option {
	return options.New(func(c *Config) error {
		if lo < 0 || hi < lo {
			return fmt.Errorf("%w: x %d-%d", errs.ErrInvalidRange, lo, hi)
		}
		c.Binning.Window.XStart, c.Binning.Window.XStop = lo, hi

		return nil
	})
}

// WithWindowY keeps only rows lo..hi of each frame (0-origin, inclusive).
func WithWindowY(lo, hi int) Option {
	return options.New(func(c *Config) error {
		if lo < 0 || hi < lo {
			return fmt.Errorf("%w: y %d-%d", errs.ErrInvalidRange, lo, hi)
		}
		c.Binning.Window.YStart, c.Binning.Window.YStop = lo, hi

		return nil
	})
}

// WithFormat selects the output format.
func WithFormat(f format.OutputFormat) Option {
	return options.New(func(c *Config) error {
		if f != format.ICP && f != format.VTK {
			return fmt.Errorf("%w: %s", errs.ErrUnknownFormat, f)
		}
		c.Format = f

		return nil
	})
}

// WithRowPolicy sets what happens to a partial bin at the end of a row.
func WithRowPolicy(p format.PartialPolicy) Option {
	return options.NoError(func(c *Config) {
		c.Binning.RowPolicy = p
	})
}

// WithFramePolicy sets what happens to a partial row group at the end of a frame.
func WithFramePolicy(p format.PartialPolicy) Option {
	return options.NoError(func(c *Config) {
		c.Binning.FramePolicy = p
	})
}

// WithKeepPartial keeps every partial bin along both axes.
func WithKeepPartial() Option {
	return options.NoError(func(c *Config) {
		c.Binning.RowPolicy = format.KeepAlways
		c.Binning.FramePolicy = format.KeepAlways
	})
}

// WithOutputDir writes outputs to dir instead of next to each input.
func WithOutputDir(dir string) Option {
	return options.NoError(func(c *Config) {
		c.OutputDir = dir
	})
}

// WithOutputCompression compresses each output with the given codec.
func WithOutputCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.OutputCompression = ct

		return nil
	})
}

// WithMaxRowLength bounds the number of raw values in one row.
func WithMaxRowLength(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max row length %d", errs.ErrInvalidConfig, n)
		}
		c.Binning.MaxRowLength = n

		return nil
	})
}

// WithMaxFrameSize bounds the number of bins in one frame.
func WithMaxFrameSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max frame size %d", errs.ErrInvalidConfig, n)
		}
		c.Binning.MaxFrameSize = n

		return nil
	})
}
