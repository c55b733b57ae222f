package scan

import (
	"strings"
	"testing"
)

func BenchmarkScanFrame(b *testing.B) {
	var sb strings.Builder
	for r := 0; r < 256; r++ {
		for c := 0; c < 256; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString("1234")
		}
		if r < 255 {
			sb.WriteString(";\n")
		}
	}
	sb.WriteByte('\n')
	input := sb.String()
	sink := &rowCollector{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink.rows = sink.rows[:0]
		tok, _ := NewTokenizer(NewLineSource(strings.NewReader(input)))
		if _, err := tok.ScanFrame(sink); err != nil {
			b.Fatal(err)
		}
	}
}
