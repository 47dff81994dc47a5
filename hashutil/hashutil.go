// Package hashutil provides utility interfaces for checksum hash functions.
package hashutil

import "hash"

// Hash8 is the common interface implemented by all 8-bit checksums.
type Hash8 interface {
	hash.Hash
	Sum8() uint8 // returns the 8-bit checksum of the hash
}

// Hash16 is the common interface implemented by all 16-bit checksums.
type Hash16 interface {
	hash.Hash
	Sum16() uint16 // returns the 16-bit checksum of the hash
}

// Sum16 returns the current checksum of h widened to 16 bits.
// Hashes implementing neither Hash8 nor Hash16 have the
// low two bytes of their big-endian Sum returned.
func Sum16(h hash.Hash) uint16 {
	switch h := h.(type) {
	case Hash16:
		return h.Sum16()
	case Hash8:
		return uint16(h.Sum8())
	}

	var sum uint16
	for _, b := range h.Sum(nil) {
		sum = sum<<8 | uint16(b)
	}

	return sum
}
