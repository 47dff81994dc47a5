// Package fold implements the iteration skeleton shared by all checksum algorithms.
//
// An algorithm is described by a seed and a per-byte step function.
// The fold starts from the seed, applies the step once per input byte
// in sequence order and returns the final register value as is.
// Seeds and steps stay with the algorithm packages;
// only the loop lives here.
package fold

import "iter"

// Value is the register type of a checksum.
type Value interface {
	~uint8 | ~uint16
}

// Step folds a single input byte into the accumulator and returns the new accumulator.
type Step[T Value] func(acc T, b byte) T

// Slice folds every element of p, in order, into seed using step.
// The element type must be exactly one byte wide.
func Slice[T Value, E ~uint8](seed T, step Step[T], p []E) T {
	acc := seed
	for _, b := range p {
		acc = step(acc, byte(b))
	}

	return acc
}

// Seq folds the values yielded by seq, in order, into seed using step.
// seq is traversed once.
func Seq[T Value, E ~uint8](seed T, step Step[T], seq iter.Seq[E]) T {
	acc := seed
	if seq == nil {
		return acc
	}

	for b := range seq {
		acc = step(acc, byte(b))
	}

	return acc
}
