package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/reflbin/errs"
)

type (
	OutputFormat    uint8
	PartialPolicy   uint8
	CompressionType uint8
)

const (
	ICP OutputFormat = 0x1 // ICP represents the wrapped-CSV matrix format.
	VTK OutputFormat = 0x2 // VTK represents the legacy ASCII structured-points format.

	// KeepIfSole keeps a partial bin only when it is the only bin of the row or frame.
	KeepIfSole PartialPolicy = 0x1
	// KeepAlways keeps every partial bin.
	KeepAlways PartialPolicy = 0x2
	// Drop discards partial bins and reclassifies their counts as ignored.
	Drop PartialPolicy = 0x3

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 stream compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame compression.
)

func (f OutputFormat) String() string {
	switch f {
	case ICP:
		return "ICP"
	case VTK:
		return "VTK"
	default:
		return "Unknown"
	}
}

// ColumnMajor reports whether the format stores frames column by column,
// i.e. in the opposite order from accumulation.
func (f OutputFormat) ColumnMajor() bool {
	return f == ICP
}

// ParseOutputFormat parses a format name ("icp" or "vtk", case-insensitive).
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "icp":
		return ICP, nil
	case "vtk":
		return VTK, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownFormat, s)
	}
}

func (p PartialPolicy) String() string {
	switch p {
	case KeepIfSole:
		return "KeepIfSole"
	case KeepAlways:
		return "KeepAlways"
	case Drop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// Keep reports whether a partial bin is retained given the number of
// complete bins already produced.
func (p PartialPolicy) Keep(complete int) bool {
	switch p {
	case KeepAlways:
		return true
	case KeepIfSole:
		return complete == 0
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix used for the compression type,
// or an empty string for CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".sz"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression parses a codec name as accepted on the command line.
func ParseCompression(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "gz", "gzip":
		return CompressionGzip, nil
	case "zst", "zstd":
		return CompressionZstd, nil
	case "s2", "sz":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, s)
	}
}

// CompressionFromPath detects the compression of a file from its extension.
// Unknown extensions are treated as uncompressed.
func CompressionFromPath(path string) CompressionType {
	lower := strings.ToLower(path)
	for _, c := range []CompressionType{CompressionGzip, CompressionZstd, CompressionS2, CompressionLZ4} {
		if strings.HasSuffix(lower, c.Extension()) {
			return c
		}
	}

	return CompressionNone
}
