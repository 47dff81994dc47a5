// Package crcxor implements the 8-bit running XOR checksum.
//
// It is the longitudinal parity of the input, starting from 0xFF.
// Since XOR is commutative it detects single bit flips but not reordered bytes.
package crcxor

import (
	"iter"

	"github.com/pchchv/crc/hashutil"
	"github.com/pchchv/crc/internal/fold"
)

// Size of an XOR checksum in bytes.
const Size = 1

// Seed is the initial register value.
const Seed = 0xFF

func step(sum uint8, b byte) uint8 {
	return sum ^ b
}

// Checksum returns the XOR checksum of data.
func Checksum[E ~uint8](data []E) uint8 {
	return fold.Slice(uint8(Seed), step, data)
}

// ChecksumSeq returns the XOR checksum of the bytes yielded by seq.
func ChecksumSeq[E ~uint8](seq iter.Seq[E]) uint8 {
	return fold.Seq(uint8(Seed), step, seq)
}

// Update returns the result of adding the bytes in p to sum.
func Update(sum uint8, p []byte) uint8 {
	return fold.Slice(sum, step, p)
}

// Verify reports whether sum is the XOR checksum of data.
func Verify[E ~uint8](data []E, sum uint8) bool {
	return Checksum(data) == sum
}

type digest struct {
	sum uint8
}

// New creates a new hashutil.Hash8 computing the XOR checksum.
func New() hashutil.Hash8 {
	return &digest{sum: Seed}
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return 1
}

func (d *digest) Reset() {
	d.sum = Seed
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.sum = Update(d.sum, p)
	return len(p), nil
}

func (d *digest) Sum8() uint8 {
	return d.sum
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.sum)
}
