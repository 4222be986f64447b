// Package day02 computes spreadsheet checksums over rows of numbers.
package day02

import "fmt"

// Checksum sums the difference between the largest and smallest value
// of each row.
func Checksum(table [][]int) int {
	sum := 0
	for _, row := range table {
		min, max := minmax(row)
		sum += max - min
	}
	return sum
}

// DivisibleChecksum sums, for each row, the quotient of the single pair
// of values where one evenly divides the other.
func DivisibleChecksum(table [][]int) (int, error) {
	sum := 0
	for i, row := range table {
		bottom, top, err := findDivisible(row)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		sum += top / bottom
	}
	return sum, nil
}

// minmax finds the smallest and largest value of a row in one pass.
func minmax(row []int) (int, int) {
	if len(row) == 0 {
		return 0, 0
	}
	min, max := row[0], row[0]
	for _, v := range row[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func findDivisible(row []int) (int, int, error) {
	for i, a := range row {
		for j, b := range row {
			if i == j || b == 0 {
				continue
			}
			if a%b == 0 {
				return b, a, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no evenly divisible pair in %v", row)
}
