// Package reflbin converts multi-point 2-D detector scan files into
// down-sampled volumetric output.
//
// A scan file is ASCII text (optionally gzip, zstd, s2 or lz4 compressed)
// holding one frame of detector counts per acquisition point, written as
// comma-separated pixels and semicolon-terminated rows. reflbin bins each
// frame spatially, keeps every frame of a file at one shape, and writes the
// result in one of two legacy formats:
//
//   - ICP: wrapped comma-separated matrices, column-major, with the scan
//     header and per-point metadata carried through
//   - VTK: an ASCII structured-points volume with counts quantized to 16-bit
//     logarithmic codes
//
// # Core Features
//
//   - Explicit finite-state tokenizer with checked numeric accumulation
//   - Pixel window clipping and configurable partial-bin policies on both axes
//   - Recovery of dropped points and reconciliation of inconsistent shapes
//   - In-place cycle-following transpose
//   - Count accounting: recorded + ignored == total, checked per file
//   - Optional compressed output with an xxHash64 checksum per file
//
// # Basic Usage
//
// Converting files with default settings (ICP, one bin per pixel, all rows
// of a frame summed into one):
//
//	import "github.com/arloliu/reflbin"
//
//	res, err := reflbin.ConvertFiles([]string{"run12.psd.gz"})
//	if err != nil {
//	    log.Fatal(err) // configuration error
//	}
//	for _, s := range res.Summaries {
//	    fmt.Println(s.Output, s.Shape.Rows, s.Shape.Columns, s.Shape.Points)
//	}
//
// Binning 4×4 into VTK, written to another directory:
//
//	c, err := reflbin.NewConverter(
//	    reflbin.WithBinning(4, 4),
//	    reflbin.WithFormat(format.VTK),
//	    reflbin.WithOutputDir("out"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := c.ConvertFile("run12.psd")
//
// # Package Structure
//
// This package provides top-level wrappers around the convert package. The
// stages live in their own packages: scan (tokenizer), rebin (binning,
// accumulation and accounting), frame (matrix and transpose), encoding (ICP
// and VTK) and compress (stream codecs).
package reflbin

import (
	"github.com/arloliu/reflbin/convert"
	"github.com/arloliu/reflbin/format"
)

// Option configures a Converter.
type Option = convert.Option

// NewConverter creates a converter.
//
// Available options:
//   - WithBinning(width, height)
//   - WithWindowX(lo, hi) / WithWindowY(lo, hi), 0-origin inclusive
//   - WithFormat(format.ICP|format.VTK)
//   - WithRowPolicy / WithFramePolicy / WithKeepPartial
//   - WithOutputDir(dir)
//   - WithOutputCompression(format.CompressionNone|Gzip|Zstd|S2|LZ4)
//   - WithMaxRowLength(n) / WithMaxFrameSize(n)
//
// Returns an error if the configuration is invalid.
func NewConverter(opts ...Option) (*convert.Converter, error) {
	return convert.New(opts...)
}

// ConvertFile converts a single file.
//
// Parameters:
//   - path: Input scan file, compressed inputs are detected by extension
//   - opts: Converter options
//
// Returns:
//   - *convert.Summary: Shape, accounting and checksum of the output
//   - error: A configuration error, or the file's read, bound or write error
func ConvertFile(path string, opts ...Option) (*convert.Summary, error) {
	c, err := convert.New(opts...)
	if err != nil {
		return nil, err
	}

	return c.ConvertFile(path)
}

// ConvertFiles converts paths in order, continuing past files that fail.
//
// The returned error is non-nil only for a configuration error, in which case
// no file is opened. Per-file failures are in BatchResult.Failures.
func ConvertFiles(paths []string, opts ...Option) (*convert.BatchResult, error) {
	c, err := convert.New(opts...)
	if err != nil {
		return nil, err
	}

	return c.ConvertFiles(paths), nil
}

// WithBinning sets the bin size in raw pixels (width) and raw rows (height).
func WithBinning(width, height int) Option {
	return convert.WithBinning(width, height)
}

// WithWindowX keeps pixels lo..hi of each row (0-origin, inclusive).
func WithWindowX(lo, hi int) Option {
	return convert.WithWindowX(lo, hi)
}

// WithWindowY keeps rows lo..hi of each frame (0-origin, inclusive).
func WithWindowY(lo, hi int) Option {
	return convert.WithWindowY(lo, hi)
}

// WithFormat selects ICP or VTK output.
func WithFormat(f format.OutputFormat) Option {
	return convert.WithFormat(f)
}

// WithRowPolicy sets the partial-bin policy along rows.
func WithRowPolicy(p format.PartialPolicy) Option {
	return convert.WithRowPolicy(p)
}

// WithFramePolicy sets the partial-bin policy along the frame height.
func WithFramePolicy(p format.PartialPolicy) Option {
	return convert.WithFramePolicy(p)
}

// WithKeepPartial keeps every partial bin on both axes.
func WithKeepPartial() Option {
	return convert.WithKeepPartial()
}

// WithOutputDir writes outputs to dir instead of next to each input.
func WithOutputDir(dir string) Option {
	return convert.WithOutputDir(dir)
}

// WithOutputCompression compresses every output with ct.
func WithOutputCompression(ct format.CompressionType) Option {
	return convert.WithOutputCompression(ct)
}

// WithMaxRowLength bounds the raw values per row.
func WithMaxRowLength(n int) Option {
	return convert.WithMaxRowLength(n)
}

// WithMaxFrameSize bounds the bins per frame.
func WithMaxFrameSize(n int) Option {
	return convert.WithMaxFrameSize(n)
}
