// Package day05 simulates a list of jump offsets that mutate as the
// instruction pointer moves through them.
package day05

// StepsToExit counts the jumps needed to leave the list when every
// visited offset increments after use. The maze slice is modified.
func StepsToExit(maze []int) int {
	return run(maze, func(offset int) int { return offset + 1 })
}

// StepsToExitStrange counts the jumps needed to leave the list when
// offsets of three or more decrement after use instead of
// incrementing. The maze slice is modified.
func StepsToExitStrange(maze []int) int {
	return run(maze, func(offset int) int {
		if offset >= 3 {
			return offset - 1
		}
		return offset + 1
	})
}

func run(maze []int, update func(int) int) int {
	steps := 0
	for i := 0; i >= 0 && i < len(maze); {
		offset := maze[i]
		maze[i] = update(offset)
		i += offset
		steps++
	}
	return steps
}
