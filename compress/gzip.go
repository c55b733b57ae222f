package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/reflbin/format"
)

// GzipCodec reads and writes gzip streams, including multi-member files.
type GzipCodec struct {
	level int
}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a gzip codec using the default compression level.
func NewGzipCodec() GzipCodec {
	return GzipCodec{level: gzip.DefaultCompression}
}

// Type returns format.CompressionGzip.
func (c GzipCodec) Type() format.CompressionType {
	return format.CompressionGzip
}

// NewReader returns a gzip decompressing reader.
func (c GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return zr, nil
}

// NewWriter returns a gzip compressing writer.
func (c GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, c.level)
	if err != nil {
		return nil, err
	}

	return zw, nil
}
