package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/reflbin/format"
)

// zstdDecoderPool pools zstd decoders; a decoder runs without allocations
// once warmed up, so one is kept across the files of a batch.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse across output files.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// ZstdCodec reads and writes Zstandard streams.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
//
// Returns:
//   - ZstdCodec: New Zstd codec instance
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Type returns format.CompressionZstd.
func (c ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}

// NewReader returns a pooled zstd decoder reading from r.
// Close returns the decoder to the pool.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	if err := decoder.Reset(r); err != nil {
		zstdDecoderPool.Put(decoder)
		return nil, fmt.Errorf("zstd decoder reset: %w", err)
	}

	return &zstdReader{decoder: decoder}, nil
}

// NewWriter returns a pooled zstd encoder writing to w.
// Close flushes the stream and returns the encoder to the pool.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	encoder.Reset(w)

	return &zstdWriter{encoder: encoder}, nil
}

type zstdReader struct {
	decoder *zstd.Decoder
}

func (z *zstdReader) Read(p []byte) (int, error) {
	if z.decoder == nil {
		return 0, io.ErrClosedPipe
	}

	return z.decoder.Read(p)
}

func (z *zstdReader) Close() error {
	if z.decoder == nil {
		return nil
	}

	// detach the source so the pooled decoder does not keep it alive
	_ = z.decoder.Reset(nil)
	zstdDecoderPool.Put(z.decoder)
	z.decoder = nil

	return nil
}

type zstdWriter struct {
	encoder *zstd.Encoder
}

func (z *zstdWriter) Write(p []byte) (int, error) {
	if z.encoder == nil {
		return 0, io.ErrClosedPipe
	}

	return z.encoder.Write(p)
}

func (z *zstdWriter) Close() error {
	if z.encoder == nil {
		return nil
	}

	err := z.encoder.Close()
	z.encoder.Reset(nil)
	zstdEncoderPool.Put(z.encoder)
	z.encoder = nil

	return err
}
