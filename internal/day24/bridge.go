// Package day24 builds bridges from two-port magnetic components and
// scores the strongest and longest ones.
package day24

import (
	"fmt"
	"strconv"
	"strings"

	"advent2017/internal/numutil"
)

// Component is a magnetic component with two port types.
type Component struct {
	A, B int
}

// strength is the sum of both port types.
func (c Component) strength() int {
	return c.A + c.B
}

// ParseComponents reads one "a/b" component per line.
func ParseComponents(input string) ([]Component, error) {
	var components []Component
	for i, line := range numutil.Lines(input) {
		head, tail, ok := strings.Cut(line, "/")
		if !ok {
			return nil, fmt.Errorf("line %d: missing port separator", i)
		}
		a, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse port: %w", i, err)
		}
		b, err := strconv.Atoi(tail)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse port: %w", i, err)
		}
		components = append(components, Component{A: a, B: b})
	}
	return components, nil
}

// Strongest returns the highest total strength of any bridge starting
// from a zero port.
func Strongest(components []Component) int {
	best := 0
	search(components, make([]bool, len(components)), 0, 0, 0, func(strength, length int) {
		if strength > best {
			best = strength
		}
	})
	return best
}

// LongestStrength returns the strength of the longest bridge,
// breaking length ties by strength.
func LongestStrength(components []Component) int {
	bestLength, bestStrength := 0, 0
	search(components, make([]bool, len(components)), 0, 0, 0, func(strength, length int) {
		if length > bestLength || (length == bestLength && strength > bestStrength) {
			bestLength = length
			bestStrength = strength
		}
	})
	return bestStrength
}

// search extends the bridge ending at port with every unused matching
// component, reporting each reachable bridge to visit.
func search(components []Component, used []bool, port, strength, length int, visit func(strength, length int)) {
	visit(strength, length)
	for i, c := range components {
		if used[i] {
			continue
		}
		next := -1
		if c.A == port {
			next = c.B
		} else if c.B == port {
			next = c.A
		}
		if next < 0 {
			continue
		}
		used[i] = true
		search(components, used, next, strength+c.strength(), length+1, visit)
		used[i] = false
	}
}
