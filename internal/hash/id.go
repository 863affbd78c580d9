// Package hash provides the xxHash64 digest used by the container envelope's
// integrity check (SPEC_FULL.md §4.7).
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of a byte stream.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
