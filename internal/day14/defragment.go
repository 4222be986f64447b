// Package day14 maps a disk grid from 128 knot hashes and counts its
// used squares and contiguous regions.
package day14

import (
	"fmt"

	"advent2017/internal/day10"
	"advent2017/internal/numutil"
)

const gridSize = 128

// Grid is the 128x128 disk map; true marks a used square.
type Grid [gridSize][gridSize]bool

// BuildGrid derives the grid for a key string: row i is the bit
// pattern of the knot hash of "key-i".
func BuildGrid(key string) Grid {
	var grid Grid
	for row := 0; row < gridSize; row++ {
		hash := day10.NewKnot(256).Hash([]byte(fmt.Sprintf("%s-%d", key, row)))
		for i, b := range hash {
			for bit := 0; bit < 8; bit++ {
				grid[row][i*8+bit] = b&(0x80>>bit) != 0
			}
		}
	}
	return grid
}

// UsedSquares counts the used squares of the grid for a key.
func UsedSquares(key string) int {
	count := 0
	for row := 0; row < gridSize; row++ {
		hash := day10.NewKnot(256).Hash([]byte(fmt.Sprintf("%s-%d", key, row)))
		for _, b := range hash {
			count += numutil.OneBits(b)
		}
	}
	return count
}

// Regions counts groups of used squares connected horizontally or
// vertically.
func (g *Grid) Regions() int {
	var seen [gridSize][gridSize]bool
	regions := 0
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			if !g[row][col] || seen[row][col] {
				continue
			}
			regions++
			g.flood(row, col, &seen)
		}
	}
	return regions
}

func (g *Grid) flood(row, col int, seen *[gridSize][gridSize]bool) {
	type point struct{ row, col int }
	stack := []point{{row, col}}
	seen[row][col] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range []point{
			{p.row - 1, p.col}, {p.row + 1, p.col},
			{p.row, p.col - 1}, {p.row, p.col + 1},
		} {
			if next.row < 0 || next.row >= gridSize || next.col < 0 || next.col >= gridSize {
				continue
			}
			if g[next.row][next.col] && !seen[next.row][next.col] {
				seen[next.row][next.col] = true
				stack = append(stack, next)
			}
		}
	}
}
