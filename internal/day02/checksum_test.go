package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	table := [][]int{{5, 1, 9, 5}, {7, 5, 3}, {2, 4, 6, 8}}
	assert.Equal(t, 18, Checksum(table))
}

func TestDivisibleChecksum(t *testing.T) {
	table := [][]int{{5, 9, 2, 8}, {9, 4, 7, 3}, {3, 8, 6, 5}}
	sum, err := DivisibleChecksum(table)
	require.NoError(t, err)
	assert.Equal(t, 9, sum)
}

func TestDivisibleChecksumNoPair(t *testing.T) {
	_, err := DivisibleChecksum([][]int{{3, 5, 7}})
	assert.Error(t, err)
}

func TestMinmax(t *testing.T) {
	tests := []struct {
		row      []int
		min, max int
	}{
		{[]int{5, 1, 9, 5}, 1, 9},
		{[]int{7, 5, 3}, 3, 7},
		{[]int{2, 4, 6, 8}, 2, 8},
	}
	for _, tt := range tests {
		min, max := minmax(tt.row)
		assert.Equal(t, tt.min, min)
		assert.Equal(t, tt.max, max)
	}
}

func TestFindDivisible(t *testing.T) {
	bottom, top, err := findDivisible([]int{5, 9, 2, 8})
	require.NoError(t, err)
	assert.Equal(t, 2, bottom)
	assert.Equal(t, 8, top)
}
