// Package day19 traces a packet along a routing diagram of pipes,
// corners, and letters.
package day19

import (
	"fmt"
	"strings"
)

// Trace is the outcome of following the diagram: the letters passed
// in order and the total number of steps taken.
type Trace struct {
	Letters string
	Steps   int
}

// Navigate follows the diagram from the single entry on the top row
// until the path runs out.
func Navigate(input string) (Trace, error) {
	grid := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(grid) == 0 {
		return Trace{}, fmt.Errorf("empty diagram")
	}
	col := strings.IndexByte(grid[0], '|')
	if col < 0 {
		return Trace{}, fmt.Errorf("no entry point on top row")
	}

	at := func(row, c int) byte {
		if row < 0 || row >= len(grid) || c < 0 || c >= len(grid[row]) {
			return ' '
		}
		return grid[row][c]
	}

	row := 0
	drow, dcol := 1, 0
	var letters strings.Builder
	steps := 0
	for {
		cell := at(row, col)
		if cell == ' ' {
			break
		}
		steps++
		switch {
		case cell == '+':
			// Turn onto the perpendicular direction that has track.
			if drow != 0 {
				if at(row, col-1) != ' ' {
					drow, dcol = 0, -1
				} else if at(row, col+1) != ' ' {
					drow, dcol = 0, 1
				} else {
					return Trace{}, fmt.Errorf("dead corner at row %d, col %d", row, col)
				}
			} else {
				if at(row-1, col) != ' ' {
					drow, dcol = -1, 0
				} else if at(row+1, col) != ' ' {
					drow, dcol = 1, 0
				} else {
					return Trace{}, fmt.Errorf("dead corner at row %d, col %d", row, col)
				}
			}
		case cell >= 'A' && cell <= 'Z':
			letters.WriteByte(cell)
		}
		row += drow
		col += dcol
	}
	return Trace{Letters: letters.String(), Steps: steps}, nil
}
