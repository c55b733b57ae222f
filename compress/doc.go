// Package compress provides the stream codecs used to read compressed scan files
// and to write compressed converted output.
//
// # Supported Algorithms
//
//   - None: data passes through unchanged
//   - Gzip: the format of most archived scan files (.gz)
//   - Zstd: best ratio, moderate speed (.zst)
//   - S2: Snappy-compatible framing, very fast (.sz)
//   - LZ4: LZ4 frame format, fastest decompression (.lz4)
//
// # Usage
//
// Readers are chosen from the input file extension:
//
//	ct := format.CompressionFromPath(path)
//	r, err := compress.NewReader(file, ct)
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
// Writers wrap the output file and report how well the output compressed:
//
//	w, err := compress.NewWriter(file, format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	if _, err := w.Write(doc); err != nil {
//		return err
//	}
//	if err := w.Close(); err != nil { // flushes the codec, leaves file open
//		return err
//	}
//	stats := w.Stats()
//
// Closing a reader or writer never closes the wrapped io.Reader or io.Writer.
//
// # Thread Safety
//
// Codec values are stateless and safe for concurrent use. The readers and
// writers they create are not.
package compress
