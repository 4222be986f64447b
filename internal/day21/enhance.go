// Package day21 grows a pixel grid by repeatedly replacing 2x2 or 3x3
// blocks through an enhancement rulebook.
package day21

import (
	"fmt"
	"strings"

	"advent2017/internal/numutil"
)

// StartPattern is the glider every enhancement starts from.
const StartPattern = ".#./..#/###"

// Rulebook maps every orientation of each source pattern to its
// replacement, patterns keyed in slash notation.
type Rulebook map[string]string

// ParseRules reads one "from => to" line per rule and indexes all
// eight orientations of each source.
func ParseRules(input string) (Rulebook, error) {
	rules := make(Rulebook)
	for i, line := range numutil.Lines(input) {
		from, to, ok := strings.Cut(line, " => ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing arrow", i)
		}
		grid, err := parsePattern(from)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		for _, variant := range orientations(grid) {
			rules[render(variant)] = to
		}
	}
	return rules, nil
}

// parsePattern splits slash notation into rows, checking squareness.
func parsePattern(pattern string) ([]string, error) {
	rows := strings.Split(pattern, "/")
	for _, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("pattern %q is not square", pattern)
		}
	}
	return rows, nil
}

func render(grid []string) string {
	return strings.Join(grid, "/")
}

// orientations lists the four rotations of a grid and their flips.
func orientations(grid []string) [][]string {
	variants := make([][]string, 0, 8)
	for i := 0; i < 4; i++ {
		variants = append(variants, grid, flip(grid))
		grid = rotate(grid)
	}
	return variants
}

// rotate turns the grid a quarter turn clockwise.
func rotate(grid []string) []string {
	n := len(grid)
	rotated := make([]string, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		for col := 0; col < n; col++ {
			sb.WriteByte(grid[n-1-col][row])
		}
		rotated[row] = sb.String()
	}
	return rotated
}

// flip mirrors the grid horizontally.
func flip(grid []string) []string {
	flipped := make([]string, len(grid))
	for i, row := range grid {
		bytes := []byte(row)
		for l, r := 0, len(bytes)-1; l < r; l, r = l+1, r-1 {
			bytes[l], bytes[r] = bytes[r], bytes[l]
		}
		flipped[i] = string(bytes)
	}
	return flipped
}

// Enhance applies rounds of enhancement to the start pattern and
// returns the resulting grid rows.
func (r Rulebook) Enhance(rounds int) ([]string, error) {
	grid, err := parsePattern(StartPattern)
	if err != nil {
		return nil, err
	}
	for round := 0; round < rounds; round++ {
		grid, err = r.step(grid)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
	}
	return grid, nil
}

// step splits the grid into blocks, replaces each through the
// rulebook, and reassembles.
func (r Rulebook) step(grid []string) ([]string, error) {
	block := 2
	if len(grid)%2 != 0 {
		block = 3
	}
	blocks := len(grid) / block
	out := make([]string, blocks*(block+1))
	for by := 0; by < blocks; by++ {
		for bx := 0; bx < blocks; bx++ {
			rows := make([]string, block)
			for i := range rows {
				rows[i] = grid[by*block+i][bx*block : (bx+1)*block]
			}
			replacement, ok := r[render(rows)]
			if !ok {
				return nil, fmt.Errorf("no rule for block %q", render(rows))
			}
			for i, row := range strings.Split(replacement, "/") {
				out[by*(block+1)+i] += row
			}
		}
	}
	return out, nil
}

// LitPixels counts the on pixels after rounds of enhancement.
func (r Rulebook) LitPixels(rounds int) (int, error) {
	grid, err := r.Enhance(rounds)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range grid {
		count += strings.Count(row, "#")
	}
	return count, nil
}
