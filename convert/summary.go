package convert

import (
	"github.com/arloliu/reflbin/compress"
	"github.com/arloliu/reflbin/encoding"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/internal/hash"
	"github.com/arloliu/reflbin/internal/monitoring"
	"github.com/arloliu/reflbin/rebin"
)

// Summary describes one converted file.
type Summary struct {
	Input       string
	Output      string
	Format      format.OutputFormat
	Shape       encoding.Shape
	Ledger      rebin.Ledger
	Warnings    []rebin.Warning
	Checksum    uint64 // xxHash64 of the bytes written to Output
	Compression compress.CompressionStats
}

// Report logs the per-file report.
func (s *Summary) Report() {
	monitoring.Logf("%s %d x %d x %d", s.Output, s.Shape.Rows, s.Shape.Columns, s.Shape.Points)
	monitoring.Logf("number of nonzero bins = %d", s.Ledger.NonZero)
	monitoring.Logf("recorded counts = %d", s.Ledger.Recorded)
	if s.Ledger.Ignored != 0 {
		monitoring.Logf("ignored counts = %d", s.Ledger.Ignored)
	}
	if s.Compression.Algorithm != format.CompressionNone && s.Compression.OriginalSize > 0 {
		monitoring.Logf("%s compressed %d -> %d bytes (%.1f%% saved)", s.Compression.Algorithm,
			s.Compression.OriginalSize, s.Compression.CompressedSize, s.Compression.SpaceSavings())
	}
	monitoring.Logf("xxhash64 = %s", hash.Hex(s.Checksum))
}

// Balanced reports whether every emitted count was accounted for.
func (s *Summary) Balanced() bool {
	return s.Ledger.Balanced()
}
