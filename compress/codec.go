package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
)

// Codec creates compressing writers and decompressing readers for one algorithm.
type Codec interface {
	// Type returns the compression algorithm of the codec.
	Type() format.CompressionType

	// NewReader returns a reader that decompresses r.
	//
	// Closing the returned reader releases codec resources but does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter returns a writer that compresses into w.
	//
	// Close must be called to flush the final block; it does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// CompressionStats describes the output of a finished Writer.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the number of bytes written to the compressor
	OriginalSize int64

	// CompressedSize is the number of bytes the compressor produced
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnsupportedCompression for an invalid type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionGzip: NewGzipCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// NewReader returns a reader that decompresses r with the given algorithm.
func NewReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	codec, err := CreateCodec(compressionType, "input")
	if err != nil {
		return nil, err
	}

	rc, err := codec.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open %s reader: %w", compressionType, err)
	}

	return rc, nil
}

// Writer compresses into an underlying writer and tracks the sizes on both sides.
type Writer struct {
	algorithm format.CompressionType
	wc        io.WriteCloser
	out       *countingWriter
	in        int64
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter returns a Writer that compresses into w with the given algorithm.
func NewWriter(w io.Writer, compressionType format.CompressionType) (*Writer, error) {
	codec, err := CreateCodec(compressionType, "output")
	if err != nil {
		return nil, err
	}

	out := &countingWriter{w: w}
	wc, err := codec.NewWriter(out)
	if err != nil {
		return nil, fmt.Errorf("open %s writer: %w", compressionType, err)
	}

	return &Writer{algorithm: compressionType, wc: wc, out: out}, nil
}

// Write compresses p.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.wc.Write(p)
	w.in += int64(n)

	return n, err
}

// Close flushes the compressor. The underlying writer stays open.
func (w *Writer) Close() error {
	return w.wc.Close()
}

// Stats returns the sizes seen so far. They are final after Close.
func (w *Writer) Stats() CompressionStats {
	return CompressionStats{
		Algorithm:      w.algorithm,
		OriginalSize:   w.in,
		CompressedSize: w.out.n,
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
