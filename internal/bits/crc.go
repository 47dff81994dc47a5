// Package bits implements bit-serial polynomial division over byte streams.
//
// The functions in this package process one bit per iteration and
// use no lookup tables. They define the checksums the table driven
// implementations must reproduce, and are much slower than them.
package bits

import (
	"io"

	"github.com/icza/bitio"
)

// CRC8 divides the bits read from r, most significant bit of every byte first,
// by the 8-bit polynomial poly, starting with the register set to seed.
// It returns the remainder once r is exhausted.
func CRC8(r io.Reader, poly, seed uint8) (uint8, error) {
	br := bitio.NewReader(r)
	crc := seed
	for {
		bit, err := br.ReadBool()
		if err == io.EOF {
			return crc, nil
		}

		if err != nil {
			return 0, err
		}

		// feedback is the bit shifted out of the register xor the input bit.
		feedback := crc&0x80 != 0
		if bit {
			feedback = !feedback
		}

		crc <<= 1
		if feedback {
			crc ^= poly
		}
	}
}

// CRC16Reflected divides the bits read from r, least significant bit of every byte first,
// by the reflected 16-bit polynomial poly, starting with the register set to seed.
// It returns the remainder once r is exhausted.
func CRC16Reflected(r io.Reader, poly, seed uint16) (uint16, error) {
	br := bitio.NewReader(r)
	crc := seed
	for {
		// bitio yields bits MSB first, so collect a whole byte and walk it backwards.
		var octet [8]bool
		for i := range octet {
			bit, err := br.ReadBool()
			if err != nil {
				if err == io.EOF && i == 0 {
					return crc, nil
				}

				return 0, unexpected(err)
			}

			octet[i] = bit
		}

		for i := len(octet) - 1; i >= 0; i-- {
			feedback := crc&1 != 0
			if octet[i] {
				feedback = !feedback
			}

			crc >>= 1
			if feedback {
				crc ^= poly
			}
		}
	}
}

// unexpected returns io.ErrUnexpectedEOF if error is io.EOF,
// and returns error otherwise.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
