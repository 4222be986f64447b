// Package day03 works with a square spiral memory layout where cell 1
// sits at the center and cells spiral outward counter-clockwise.
package day03

// Steps computes the Manhattan distance from cell n back to the center
// of the spiral.
//
// Cell n sits on ring r, the smallest r with (2r+1)^2 >= n. The ring
// holds 8r cells split over four sides of length 2r, and the midpoint
// of each side is exactly r steps from the center.
func Steps(n int) int {
	if n <= 1 {
		return 0
	}
	r := 1
	for (2*r+1)*(2*r+1) < n {
		r++
	}
	ringStart := (2*r - 1) * (2*r - 1)
	posOnSide := (n - ringStart - 1) % (2 * r)
	mid := r - 1
	offset := posOnSide - mid
	if offset < 0 {
		offset = -offset
	}
	return r + offset
}

// StressTest walks the spiral writing into each cell the sum of all
// already-populated neighbors, and returns the first value written that
// exceeds n.
func StressTest(n int) int {
	type point struct{ x, y int }
	values := map[point]int{{0, 0}: 1}

	// Directions cycle right, up, left, down with side lengths
	// 1,1,2,2,3,3,...
	dirs := []point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	x, y := 0, 0
	sideLen := 1
	for dir := 0; ; dir = (dir + 1) % 4 {
		for step := 0; step < sideLen; step++ {
			x += dirs[dir].x
			y += dirs[dir].y
			sum := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					sum += values[point{x + dx, y + dy}]
				}
			}
			values[point{x, y}] = sum
			if sum > n {
				return sum
			}
		}
		if dir%2 == 1 {
			sideLen++
		}
	}
}
