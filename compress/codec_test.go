package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionGzip,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func scanPayload(lines int) []byte {
	var sb strings.Builder
	sb.WriteString("#S 1 scan\n Mot: 0 1 2\nX Y Z\n")
	for i := 0; i < lines; i++ {
		sb.WriteString("0,0,1,3,0,12,0,0;")
		if i%8 == 7 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("0,0,0\n")

	return []byte(sb.String())
}

func compressAll(t *testing.T, ct format.CompressionType, data []byte) ([]byte, CompressionStats) {
	t.Helper()
	var out bytes.Buffer
	w, err := NewWriter(&out, ct)
	require.NoError(t, err)

	// split writes so codecs see more than one call
	half := len(data) / 2
	_, err = w.Write(data[:half])
	require.NoError(t, err)
	_, err = w.Write(data[half:])
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return out.Bytes(), w.Stats()
}

func decompressAll(t *testing.T, ct format.CompressionType, data []byte) []byte {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data), ct)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return got
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := scanPayload(2000)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, stats := compressAll(t, ct, payload)

			require.Equal(t, ct, stats.Algorithm)
			require.Equal(t, int64(len(payload)), stats.OriginalSize)
			require.Equal(t, int64(len(compressed)), stats.CompressedSize)
			if ct == format.CompressionNone {
				require.Equal(t, payload, compressed)
				require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-9)
			} else {
				require.Less(t, stats.CompressionRatio(), 0.5)
				require.Greater(t, stats.SpaceSavings(), 50.0)
			}

			require.Equal(t, payload, decompressAll(t, ct, compressed))
		})
	}
}

func TestCodec_PooledReuse(t *testing.T) {
	first := scanPayload(10)
	second := scanPayload(500)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			a, _ := compressAll(t, ct, first)
			b, _ := compressAll(t, ct, second)

			require.Equal(t, second, decompressAll(t, ct, b))
			require.Equal(t, first, decompressAll(t, ct, a))
		})
	}
}

func TestGzipCodec_Magic(t *testing.T) {
	compressed, _ := compressAll(t, format.CompressionGzip, []byte("1,2,3\n"))
	require.Equal(t, []byte{0x1f, 0x8b}, compressed[:2])
}

func TestGzipCodec_CorruptInput(t *testing.T) {
	_, err := NewReader(strings.NewReader("not gzip data"), format.CompressionGzip)
	require.Error(t, err)
}

func TestZstdCodec_CloseTwice(t *testing.T) {
	codec := NewZstdCodec()

	w, err := codec.NewWriter(io.Discard)
	require.NoError(t, err)
	_, err = w.Write([]byte("1,2,3\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("x"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "output")
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
	}

	_, err := CreateCodec(format.CompressionType(0), "output")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "output")
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = NewReader(strings.NewReader(""), format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "invalid input compression")

	_, err = NewWriter(io.Discard, format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "invalid output compression")
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name    string
		stats   CompressionStats
		ratio   float64
		savings float64
	}{
		{name: "empty", stats: CompressionStats{}, ratio: 0, savings: 100},
		{name: "half", stats: CompressionStats{OriginalSize: 1000, CompressedSize: 500}, ratio: 0.5, savings: 50},
		{name: "expanded", stats: CompressionStats{OriginalSize: 10, CompressedSize: 30}, ratio: 3, savings: -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.ratio, tt.stats.CompressionRatio(), 1e-9)
			require.InDelta(t, tt.savings, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}
