package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/reflbin/compress"
	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/internal/hash"
	"github.com/arloliu/reflbin/internal/monitoring"
	"github.com/arloliu/reflbin/internal/options"
)

// Converter turns scan files into ICP or VTK output. Files are converted one
// at a time and share nothing but the configuration.
//
// Note: The Converter is NOT thread-safe.
type Converter struct {
	cfg Config
}

// New creates a Converter from DefaultConfig and opts.
//
// Returns:
//   - *Converter: The configured converter
//   - error: A configuration error wrapping errs.ErrInvalidConfig, errs.ErrInvalidRange,
//     errs.ErrInvalidBinning, errs.ErrUnknownFormat or errs.ErrUnsupportedCompression
func New(opts ...Option) (*Converter, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{cfg: cfg}, nil
}

// Config returns a copy of the converter settings.
func (c *Converter) Config() Config {
	return c.cfg
}

// OutputPath returns where ConvertFile writes the output for input.
func (c *Converter) OutputPath(input string) string {
	return OutputPath(input, c.cfg.Format, c.cfg.OutputDir, c.cfg.OutputCompression)
}

// Convert reads one uncompressed scan from r and writes the converted output
// to w. source names the input in the VTK title line and in log messages.
//
// The returned Summary has no Output, Checksum or Compression; ConvertFile
// fills those in.
func (c *Converter) Convert(r io.Reader, w io.Writer, source string) (*Summary, error) {
	sf, err := NewScanFile(&c.cfg, source, r, w)
	if err != nil {
		return nil, err
	}
	if err := sf.Run(); err != nil {
		return nil, err
	}

	return &Summary{
		Input:    source,
		Format:   c.cfg.Format,
		Shape:    sf.Shape(),
		Ledger:   sf.Ledger(),
		Warnings: sf.Warnings(),
	}, nil
}

// ConvertFile converts the file at path, decompressing it according to its
// extension, and writes the output to OutputPath(path). A partially written
// output is removed when conversion fails.
func (c *Converter) ConvertFile(path string) (*Summary, error) {
	outPath := c.OutputPath(path)
	if filepath.Clean(outPath) == filepath.Clean(path) {
		return nil, fmt.Errorf("%s: %w: output would overwrite the input", path, errs.ErrInvalidConfig)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r, err := compress.NewReader(in, format.CompressionFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}

	summary, err := c.writeOutput(r, out, path)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(outPath)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	summary.Output = outPath

	return summary, nil
}

func (c *Converter) writeOutput(r io.Reader, out io.Writer, source string) (*Summary, error) {
	digest := hash.NewDigest()
	cw, err := compress.NewWriter(io.MultiWriter(out, digest), c.cfg.OutputCompression)
	if err != nil {
		return nil, err
	}

	summary, err := c.Convert(r, cw, source)
	if cerr := cw.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("flush output: %w", cerr)
	}
	if err != nil {
		return nil, err
	}
	summary.Checksum = digest.Sum64()
	summary.Compression = cw.Stats()

	return summary, nil
}

// FileError records a file that could not be converted. Err already names
// the file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// BatchResult collects the outcome of ConvertFiles.
type BatchResult struct {
	Summaries []*Summary
	Failures  []*FileError
}

// Failed reports whether any file failed.
func (b *BatchResult) Failed() bool {
	return len(b.Failures) > 0
}

// Err joins all file errors, or returns nil when every file converted.
func (b *BatchResult) Err() error {
	errList := make([]error, 0, len(b.Failures))
	for _, f := range b.Failures {
		errList = append(errList, f)
	}

	return errors.Join(errList...)
}

// ConvertFiles converts paths in order. A failing file is logged and
// recorded; the batch continues with the next file. Each successful file's
// report is logged.
func (c *Converter) ConvertFiles(paths []string) *BatchResult {
	res := &BatchResult{}
	for _, p := range paths {
		s, err := c.ConvertFile(p)
		if err != nil {
			monitoring.Logf("reflbin: %v", err)
			res.Failures = append(res.Failures, &FileError{Path: p, Err: err})

			continue
		}
		s.Report()
		res.Summaries = append(res.Summaries, s)
	}

	return res
}
