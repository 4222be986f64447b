// Package numutil holds the small parsing and formatting helpers shared
// across the daily solvers: digit strings, whitespace-separated number
// tables, bit counting, and the uppercase hex encoding used by the knot
// hash fingerprints.
package numutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Digits converts a string of decimal digits into a slice of ints.
func Digits(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	digits := make([]int, 0, len(input))
	for i, r := range input {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("position %d: %q is not a digit", i, r)
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}

// SeparatedNumbers parses a list of integers separated by sep.
func SeparatedNumbers(input, sep string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(input), sep)
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", part, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// Lines splits input into lines, dropping a trailing newline and any
// carriage returns. Blank interior lines are preserved.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// NumberTable parses one row of whitespace-separated integers per line.
func NumberTable(input string) ([][]int, error) {
	var table [][]int
	for _, line := range Lines(input) {
		row := make([]int, 0, 8)
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse %q: %w", len(table), field, err)
			}
			row = append(row, n)
		}
		table = append(table, row)
	}
	return table, nil
}

// NumberLines parses one integer per line.
func NumberLines(input string) ([]int, error) {
	lines := Lines(input)
	numbers := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse %q: %w", i, line, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// OneBits counts the set bits in b.
func OneBits(b byte) int {
	count := 0
	for b != 0 {
		count += int(b & 1)
		b >>= 1
	}
	return count
}

// HexString encodes data as uppercase hexadecimal.
func HexString(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// JoinNumbers renders numbers separated by sep. Used to fingerprint
// slice states when detecting cycles.
func JoinNumbers(numbers []int, sep string) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}
