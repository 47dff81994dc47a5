package fold

import (
	"slices"
	"testing"
)

func count(acc uint16, b byte) uint16 {
	return acc + 1
}

func TestSlice(t *testing.T) {
	tests := []struct {
		seed uint16
		data []byte
		want uint16
	}{
		{0, nil, 0},
		{7, []byte{}, 7},
		{0, []byte{1, 2, 3}, 3},
		{0xFFFE, []byte{0, 0, 0}, 1},
	}

	for i, test := range tests {
		if got := Slice(test.seed, count, test.data); got != test.want {
			t.Errorf("i=%d; expected %d, got %d", i, test.want, got)
		}

		if got := Seq(test.seed, count, slices.Values(test.data)); got != test.want {
			t.Errorf("i=%d; sequence, expected %d, got %d", i, test.want, got)
		}
	}
}

// TestOrder checks that bytes reach the step in sequence order.
func TestOrder(t *testing.T) {
	var seen []byte
	record := func(acc uint8, b byte) uint8 {
		seen = append(seen, b)
		return acc
	}

	data := []byte{3, 1, 2}
	Slice(uint8(0), record, data)
	if !slices.Equal(seen, data) {
		t.Errorf("slice order, expected %v, got %v", data, seen)
	}

	seen = nil
	Seq(uint8(0), record, slices.Values(data))
	if !slices.Equal(seen, data) {
		t.Errorf("sequence order, expected %v, got %v", data, seen)
	}
}

func TestSeqNil(t *testing.T) {
	if got := Seq[uint8, byte](0x5A, func(acc uint8, b byte) uint8 { return 0 }, nil); got != 0x5A {
		t.Errorf("nil sequence, expected 0x5A, got 0x%02X", got)
	}
}
