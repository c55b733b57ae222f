package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of the given bytes.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex formats a checksum as a fixed-width lowercase hex string.
func Hex(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// NewDigest returns a streaming xxHash64 digest. Its Sum64 equals Checksum of
// everything written to it.
func NewDigest() *xxhash.Digest {
	return xxhash.New()
}
