package day17

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextValue(t *testing.T) {
	assert.Equal(t, 638, NextValue(3, 2017))
}

func TestNextValueEarly(t *testing.T) {
	// After nine inserts with step 3 the buffer reads
	// 0 9 5 7 2 4 3 8 6 1, with 5 following the latest insert.
	assert.Equal(t, 5, NextValue(3, 9))
}

func TestAfterZero(t *testing.T) {
	// Matches the full simulation on a small prefix.
	buffer := []int{0}
	pos := 0
	for value := 1; value <= 2017; value++ {
		pos = (pos+3)%len(buffer) + 1
		buffer = append(buffer, 0)
		copy(buffer[pos+1:], buffer[pos:])
		buffer[pos] = value
	}
	assert.Equal(t, buffer[1], AfterZero(3, 2017))
}
