// Package day13 models a layered firewall of scanners sweeping up and
// down their layers.
package day13

import (
	"fmt"
	"strconv"
	"strings"

	"advent2017/internal/numutil"
)

// Layer is one firewall layer at a given depth with a scanner range.
type Layer struct {
	Depth int
	Range int
}

// Firewall is the ordered list of occupied layers.
type Firewall []Layer

// ParseFirewall reads one "depth: range" line per layer.
func ParseFirewall(input string) (Firewall, error) {
	var firewall Firewall
	for i, line := range numutil.Lines(input) {
		head, tail, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing depth separator", i)
		}
		depth, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse depth: %w", i, err)
		}
		rng, err := strconv.Atoi(tail)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse range: %w", i, err)
		}
		if rng < 1 {
			return nil, fmt.Errorf("line %d: range must be positive", i)
		}
		firewall = append(firewall, Layer{Depth: depth, Range: rng})
	}
	return firewall, nil
}

// caught reports whether a packet entering at time delay is at the top
// of the layer when the scanner is. The scanner returns to the top
// every 2*(range-1) picoseconds; a range-1 scanner never leaves it.
func (l Layer) caught(delay int) bool {
	if l.Range == 1 {
		return true
	}
	return (delay+l.Depth)%(2*(l.Range-1)) == 0
}

// Severity sums depth*range over the layers that catch a packet
// leaving immediately.
func (f Firewall) Severity() int {
	severity := 0
	for _, layer := range f {
		if layer.caught(0) {
			severity += layer.Depth * layer.Range
		}
	}
	return severity
}

// SafeDelay returns the smallest departure delay that crosses every
// layer uncaught.
func (f Firewall) SafeDelay() int {
	for delay := 0; ; delay++ {
		if f.safe(delay) {
			return delay
		}
	}
}

func (f Firewall) safe(delay int) bool {
	for _, layer := range f {
		if layer.caught(delay) {
			return false
		}
	}
	return true
}
