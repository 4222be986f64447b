package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{12, 3},
		{23, 2},
		{1024, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Steps(tt.n), "Steps(%d)", tt.n)
	}
}

func TestStressTest(t *testing.T) {
	// First values written along the spiral are
	// 1, 1, 2, 4, 5, 10, 11, 23, 25, 26, 54, ...
	tests := []struct {
		n    int
		want int
	}{
		{1, 2},
		{4, 5},
		{5, 10},
		{25, 26},
		{26, 54},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StressTest(tt.n), "StressTest(%d)", tt.n)
	}
}
