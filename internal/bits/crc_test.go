package bits

import (
	"bytes"
	"io"
	"testing"

	"github.com/icza/bitio"
)

func TestCRC8(t *testing.T) {
	tests := []struct {
		data []byte
		want uint8
	}{
		{[]byte{}, 0x00},
		{[]byte{0x00}, 0x00},
		{[]byte{0xFF}, 0xF3},
		{[]byte{1, 2, 3, 4, 5}, 0xBC},
		{[]byte("123456789"), 0xF4},
		{[]byte("hello"), 0x92},
		{[]byte{0x75, 0x37, 0x53, 0x46, 0x4a, 0x35, 0x47, 0x16, 0x56, 0x54, 0x38, 0x42}, 0x80},
	}

	for i, test := range tests {
		got, err := CRC8(bytes.NewReader(test.data), 0x07, 0x00)
		if err != nil {
			t.Errorf("i=%d; unable to compute CRC-8 of %v; %v", i, test.data, err)
			continue
		}

		if got != test.want {
			t.Errorf("i=%d; CRC-8 of %v, expected 0x%02X, got 0x%02X", i, test.data, test.want, got)
		}
	}
}

func TestCRC16Reflected(t *testing.T) {
	tests := []struct {
		data []byte
		want uint16
	}{
		{[]byte{}, 0xFFFF},
		{[]byte{0x00}, 0x40BF},
		{[]byte{0xFF}, 0x00FF},
		{[]byte{1, 2, 3, 4, 5}, 47914},
		{[]byte("123456789"), 0x4B37},
		{[]byte("hello"), 0x34F6},
	}

	for i, test := range tests {
		got, err := CRC16Reflected(bytes.NewReader(test.data), 0xA001, 0xFFFF)
		if err != nil {
			t.Errorf("i=%d; unable to compute CRC-16 of %v; %v", i, test.data, err)
			continue
		}

		if got != test.want {
			t.Errorf("i=%d; CRC-16 of %v, expected 0x%04X, got 0x%04X", i, test.data, test.want, got)
		}
	}
}

// TestCRC8Bitstream feeds the division a stream assembled bit by bit.
func TestCRC8Bitstream(t *testing.T) {
	buf := &bytes.Buffer{}
	bw := bitio.NewWriter(buf)
	for _, b := range []byte{1, 2, 3, 4, 5} {
		for i := 7; i >= 0; i-- {
			if err := bw.WriteBool(b>>uint(i)&1 == 1); err != nil {
				t.Fatalf("unable to write bit; %v", err)
			}
		}
	}

	// flush buffer
	if err := bw.Close(); err != nil {
		t.Fatalf("unable to close (flush) the bit buffer; %v", err)
	}

	got, err := CRC8(buf, 0x07, 0x00)
	if err != nil {
		t.Fatal(err)
	}

	if got != 0xBC {
		t.Fatalf("mismatch between CRC-8 of written bits; expected: 0xBC, got: 0x%02X", got)
	}
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestReadError(t *testing.T) {
	if _, err := CRC8(errReader{}, 0x07, 0x00); err != io.ErrClosedPipe {
		t.Errorf("CRC8: expected err=%s, got err=%v", io.ErrClosedPipe, err)
	}

	if _, err := CRC16Reflected(errReader{}, 0xA001, 0xFFFF); err != io.ErrClosedPipe {
		t.Errorf("CRC16Reflected: expected err=%s, got err=%v", io.ErrClosedPipe, err)
	}
}
