// Package day10 implements the knot hash: a rotating buffer of marks
// repeatedly reversed in place. The dense hash is reused by day14 as a
// bit source.
package day10

import (
	"fmt"

	"advent2017/internal/numutil"
)

// salt is appended to the length sequence for every full hash.
var salt = []int{17, 31, 73, 47, 23}

// Knot holds the circular mark buffer together with the current
// position and skip size.
type Knot struct {
	data []int
	pos  int
	skip int
}

// NewKnot creates a knot over the marks 0..size-1. The full hash uses
// size 256.
func NewKnot(size int) *Knot {
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}
	return &Knot{data: data}
}

// Round ties one knot per length: each tie reverses the next `length`
// marks, then advances by the length plus the growing skip size.
func (k *Knot) Round(lengths []int) {
	for _, length := range lengths {
		k.tie(length)
	}
}

// tie reverses length marks starting at the current position.
func (k *Knot) tie(length int) {
	n := len(k.data)
	start := k.pos
	end := (k.pos + length - 1 + n) % n
	for step := 0; step < length/2; step++ {
		k.data[start], k.data[end] = k.data[end], k.data[start]
		start = (start + 1) % n
		end = (end - 1 + n) % n
	}
	k.pos = (k.pos + length + k.skip) % n
	k.skip++
}

// Fingerprint multiplies the first two marks of the buffer.
func (k *Knot) Fingerprint() int {
	return k.data[0] * k.data[1]
}

// Hash runs 64 salted rounds over the input bytes and condenses the
// sparse result into a 16 byte dense hash.
func (k *Knot) Hash(input []byte) [16]byte {
	lengths := make([]int, 0, len(input)+len(salt))
	for _, b := range input {
		lengths = append(lengths, int(b))
	}
	lengths = append(lengths, salt...)
	for round := 0; round < 64; round++ {
		k.Round(lengths)
	}
	var dense [16]byte
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			dense[i] ^= byte(k.data[i*16+j])
		}
	}
	return dense
}

// HashString computes the full knot hash of input and returns it as
// uppercase hex.
func HashString(input string) string {
	hash := NewKnot(256).Hash([]byte(input))
	return numutil.HexString(hash[:])
}

// RoundFingerprint parses input as comma-separated lengths, performs a
// single round over 0..255, and returns the fingerprint.
func RoundFingerprint(input string) (int, error) {
	lengths, err := numutil.SeparatedNumbers(input, ",")
	if err != nil {
		return 0, fmt.Errorf("parse lengths: %w", err)
	}
	knot := NewKnot(256)
	knot.Round(lengths)
	return knot.Fingerprint(), nil
}
