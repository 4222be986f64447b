// Package day11 measures walks on a hex grid with flat north/south
// neighbors.
package day11

import (
	"fmt"
	"strings"
)

// Walk is the outcome of following a path of hex steps: the distance
// from the origin at the end, and the furthest distance ever reached.
type Walk struct {
	Distance int
	Furthest int
}

// Follow parses a comma-separated list of steps (n, ne, se, s, sw, nw)
// and walks them from the origin.
func Follow(input string) (Walk, error) {
	// Doubled coordinates: north/south move y by 2, diagonals move
	// x by 1 and y by 1.
	var x, y int
	var walk Walk
	for _, step := range strings.Split(strings.TrimSpace(input), ",") {
		switch strings.TrimSpace(step) {
		case "n":
			y += 2
		case "s":
			y -= 2
		case "ne":
			x++
			y++
		case "se":
			x++
			y--
		case "nw":
			x--
			y++
		case "sw":
			x--
			y--
		default:
			return Walk{}, fmt.Errorf("unknown step %q", step)
		}
		if d := distance(x, y); d > walk.Furthest {
			walk.Furthest = d
		}
	}
	walk.Distance = distance(x, y)
	return walk, nil
}

// distance is the fewest steps back to the origin in doubled
// coordinates: diagonals cover the x offset, and any remaining y
// offset costs one step per two units.
func distance(x, y int) int {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if y <= x {
		return x
	}
	return x + (y-x)/2
}
