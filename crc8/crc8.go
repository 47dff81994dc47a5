// Package crc8 implements the 8-bit cyclic redundancy check, or CRC-8, checksum.
//
// The default polynomial is x^8 + x^2 + x + 1 (0x07), processed most
// significant bit first, as used by the ATM header error control
// (ITU-T I.432.1). The register starts at zero and the final register value
// is the checksum; no output reflection or xor is applied.
package crc8

import (
	"iter"

	"github.com/pchchv/crc/hashutil"
	"github.com/pchchv/crc/internal/fold"
)

// Size of a CRC-8 checksum in bytes.
const Size = 1

const (
	// Poly is the CRC-8 polynomial x^8 + x^2 + x + 1, without its leading term.
	Poly = 0x07
	// Seed is the initial register value.
	Seed = 0x00
)

// Table is a 256-word table representing
// the polynomial for efficient processing.
type Table [256]uint8

// DefaultTable is the table for Poly.
// It is built once, when the package is initialized, and must not be modified.
var DefaultTable = MakeTable(Poly)

var defaultStep = step(DefaultTable)

// MakeTable returns the Table constructed from the specified polynomial.
// Bits are processed most significant first.
func MakeTable(poly uint8) *Table {
	t := new(Table)
	for i := range t {
		crc := uint8(i)
		for j := 0; j < 8; j++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}

	return t
}

func step(tab *Table) fold.Step[uint8] {
	return func(crc uint8, b byte) uint8 {
		return tab[crc^b]
	}
}

// Checksum returns the CRC-8 checksum of data using the Poly polynomial.
func Checksum[E ~uint8](data []E) uint8 {
	return fold.Slice(uint8(Seed), defaultStep, data)
}

// ChecksumSeq returns the CRC-8 checksum of the bytes yielded by seq.
func ChecksumSeq[E ~uint8](seq iter.Seq[E]) uint8 {
	return fold.Seq(uint8(Seed), defaultStep, seq)
}

// Update returns the result of adding the bytes in p to the crc,
// using the polynomial represented by tab.
func Update(crc uint8, tab *Table, p []byte) uint8 {
	return fold.Slice(crc, step(tab), p)
}

// Verify reports whether sum is the CRC-8 checksum of data.
func Verify[E ~uint8](data []E, sum uint8) bool {
	return Checksum(data) == sum
}

// digest represents the partial evaluation of a checksum.
type digest struct {
	crc   uint8
	table *Table
}

// New creates a new hashutil.Hash8 computing the CRC-8 checksum
// using the polynomial represented by the Table.
// A nil tab selects DefaultTable.
func New(tab *Table) hashutil.Hash8 {
	if tab == nil {
		tab = DefaultTable
	}

	return &digest{crc: Seed, table: tab}
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return 1
}

func (d *digest) Reset() {
	d.crc = Seed
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, d.table, p)
	return len(p), nil
}

func (d *digest) Sum8() uint8 {
	return d.crc
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.crc)
}
