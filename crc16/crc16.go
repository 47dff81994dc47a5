// Package crc16 implements the 16-bit cyclic redundancy check, or CRC-16, checksum.
//
// The default polynomial is the IBM polynomial x^16 + x^15 + x^2 + 1
// (0x8005) in its reflected form 0xA001, processed least significant bit first.
// The register starts at 0xFFFF and the final register value is the checksum,
// without complement or byte swap. This is the variant used by Modbus and USB.
package crc16

import (
	"iter"

	"github.com/pchchv/crc/hashutil"
	"github.com/pchchv/crc/internal/fold"
)

// Size of a CRC-16 checksum in bytes.
const Size = 2

const (
	// Poly is the reversed representation of the IBM polynomial.
	Poly = 0xA001
	// Seed is the initial register value.
	Seed = 0xFFFF
)

// Table is a 256-word table representing the
// polynomial for efficient processing.
type Table [256]uint16

// DefaultTable is the table for Poly.
// It is built once, when the package is initialized, and must not be modified.
var DefaultTable = MakeTable(Poly)

var defaultStep = step(DefaultTable)

// MakeTable returns the Table constructed from the specified reversed polynomial.
// Bits are processed least significant first.
func MakeTable(poly uint16) *Table {
	t := new(Table)
	for i := range t {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}

	return t
}

func step(tab *Table) fold.Step[uint16] {
	return func(crc uint16, b byte) uint16 {
		return crc>>8 ^ tab[byte(crc)^b]
	}
}

// Checksum returns the CRC-16 checksum of data using the Poly polynomial.
func Checksum[E ~uint8](data []E) uint16 {
	return fold.Slice(uint16(Seed), defaultStep, data)
}

// ChecksumSeq returns the CRC-16 checksum of the bytes yielded by seq.
func ChecksumSeq[E ~uint8](seq iter.Seq[E]) uint16 {
	return fold.Seq(uint16(Seed), defaultStep, seq)
}

// Update returns the result of adding the bytes in p to the crc,
// using the polynomial represented by tab.
func Update(crc uint16, tab *Table, p []byte) uint16 {
	return fold.Slice(crc, step(tab), p)
}

// Verify reports whether sum is the CRC-16 checksum of data.
func Verify[E ~uint8](data []E, sum uint16) bool {
	return Checksum(data) == sum
}

// digest represents the partial evaluation of a checksum.
type digest struct {
	crc   uint16
	table *Table
}

// New creates a new hashutil.Hash16 computing the CRC-16 checksum
// using the polynomial represented by the Table.
// A nil tab selects DefaultTable.
// Its Sum method lays the checksum out in big-endian byte order.
func New(tab *Table) hashutil.Hash16 {
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

func (d *digest) Sum16() uint16 {
	return d.crc
}

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}
