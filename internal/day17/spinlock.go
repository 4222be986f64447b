// Package day17 runs the spinlock: a circular buffer grown by stepping
// a fixed distance before each insert.
package day17

// NextValue inserts the values 1..count into the spinlock and returns
// the value sitting after the last insert.
func NextValue(step, count int) int {
	buffer := make([]int, 1, count+1)
	pos := 0
	for value := 1; value <= count; value++ {
		pos = (pos+step)%len(buffer) + 1
		buffer = append(buffer, 0)
		copy(buffer[pos+1:], buffer[pos:])
		buffer[pos] = value
	}
	return buffer[(pos+1)%len(buffer)]
}

// AfterZero returns the value next to 0 after count inserts. Zero
// never moves from the front, so only inserts at position 1 matter
// and the buffer itself is not needed.
func AfterZero(step, count int) int {
	pos := 0
	after := 0
	for value := 1; value <= count; value++ {
		pos = (pos+step)%value + 1
		if pos == 1 {
			after = value
		}
	}
	return after
}
