package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty output", "", 0xef46db3751d8e999},
		{"short output", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksum_DetectsChange(t *testing.T) {
	a := Checksum([]byte(" 1,2,3\n"))
	b := Checksum([]byte(" 1,2,4\n"))
	assert.NotEqual(t, a, b)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "ef46db3751d8e999", Hex(0xef46db3751d8e999))
	assert.Equal(t, "0000000000000001", Hex(1))
	assert.Len(t, Hex(Checksum([]byte("x"))), 16)
}

func TestNewDigest_MatchesChecksum(t *testing.T) {
	data := []byte(" 1,2,3\n 4,5,6\n")

	d := NewDigest()
	_, _ = d.Write(data[:5])
	_, _ = d.Write(data[5:])

	assert.Equal(t, Checksum(data), d.Sum64())
}
