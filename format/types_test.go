package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/reflbin/errs"
)

func TestOutputFormat(t *testing.T) {
	require.Equal(t, "ICP", ICP.String())
	require.Equal(t, "VTK", VTK.String())
	require.Equal(t, "Unknown", OutputFormat(0).String())

	require.True(t, ICP.ColumnMajor())
	require.False(t, VTK.ColumnMajor())

	f, err := ParseOutputFormat("Vtk")
	require.NoError(t, err)
	require.Equal(t, VTK, f)

	_, err = ParseOutputFormat("csv")
	require.ErrorIs(t, err, errs.ErrUnknownFormat)
}

func TestPartialPolicy_Keep(t *testing.T) {
	tests := []struct {
		policy   PartialPolicy
		complete int
		want     bool
	}{
		{KeepIfSole, 0, true},
		{KeepIfSole, 1, false},
		{KeepAlways, 0, true},
		{KeepAlways, 7, true},
		{Drop, 0, false},
		{Drop, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.policy.Keep(tt.complete))
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"gz", CompressionGzip},
		{"GZIP", CompressionGzip},
		{"zst", CompressionZstd},
		{"zstd", CompressionZstd},
		{"s2", CompressionS2},
		{"sz", CompressionS2},
		{"lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCompression("bz2")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestCompressionFromPath(t *testing.T) {
	require.Equal(t, CompressionGzip, CompressionFromPath("run12.psd.GZ"))
	require.Equal(t, CompressionZstd, CompressionFromPath("/data/run12.psd.zst"))
	require.Equal(t, CompressionS2, CompressionFromPath("run12.sz"))
	require.Equal(t, CompressionLZ4, CompressionFromPath("run12.lz4"))
	require.Equal(t, CompressionNone, CompressionFromPath("run12.psd"))
	require.Equal(t, CompressionNone, CompressionFromPath("gz"))

	for _, c := range []CompressionType{CompressionGzip, CompressionZstd, CompressionS2, CompressionLZ4} {
		require.Equal(t, c, CompressionFromPath("x"+c.Extension()), c.String())
	}
	require.Empty(t, CompressionNone.Extension())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
