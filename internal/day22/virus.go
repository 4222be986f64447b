// Package day22 tracks a virus carrier walking an infinite sparse
// grid of cluster nodes.
package day22

import (
	"fmt"
	"strings"
)

// nodeState is the infection state of a grid node. Clean nodes are
// absent from the map.
type nodeState byte

const (
	weakened nodeState = iota + 1
	infected
	flagged
)

type point struct {
	x, y int
}

// Carrier is the virus carrier: the sparse grid plus its position,
// heading, and infection tally.
type Carrier struct {
	grid       map[point]nodeState
	pos        point
	dx, dy     int
	infections int
}

// NewCarrier parses the starting grid map ('#' infected) and places
// the carrier at its center facing up.
func NewCarrier(input string) (*Carrier, error) {
	rows := strings.Split(strings.TrimRight(input, "\n"), "\n")
	grid := make(map[point]nodeState)
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("grid is not square: row %d has %d nodes, want %d", y, len(row), len(rows))
		}
		for x, cell := range []byte(row) {
			switch cell {
			case '#':
				grid[point{x, y}] = infected
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unknown node %q", y, cell)
			}
		}
	}
	center := len(rows) / 2
	return &Carrier{grid: grid, pos: point{center, center}, dx: 0, dy: -1}, nil
}

func (c *Carrier) turnLeft()  { c.dx, c.dy = c.dy, -c.dx }
func (c *Carrier) turnRight() { c.dx, c.dy = -c.dy, c.dx }

// Burst performs one simple burst: turn by the node's state, toggle
// it between clean and infected, move forward.
func (c *Carrier) Burst() {
	if c.grid[c.pos] == infected {
		c.turnRight()
		delete(c.grid, c.pos)
	} else {
		c.turnLeft()
		c.grid[c.pos] = infected
		c.infections++
	}
	c.pos.x += c.dx
	c.pos.y += c.dy
}

// EvolvedBurst performs one evolved burst: clean nodes weaken,
// weakened nodes infect, infected nodes flag, flagged nodes clean,
// with the turn decided by the prior state.
func (c *Carrier) EvolvedBurst() {
	switch c.grid[c.pos] {
	case weakened:
		c.grid[c.pos] = infected
		c.infections++
	case infected:
		c.turnRight()
		c.grid[c.pos] = flagged
	case flagged:
		c.turnRight()
		c.turnRight()
		delete(c.grid, c.pos)
	default:
		c.turnLeft()
		c.grid[c.pos] = weakened
	}
	c.pos.x += c.dx
	c.pos.y += c.dy
}

// Infections reports how many bursts infected a node so far.
func (c *Carrier) Infections() int {
	return c.infections
}

// CountInfections runs bursts simple bursts from the starting map.
func CountInfections(input string, bursts int) (int, error) {
	carrier, err := NewCarrier(input)
	if err != nil {
		return 0, err
	}
	for i := 0; i < bursts; i++ {
		carrier.Burst()
	}
	return carrier.Infections(), nil
}

// CountEvolvedInfections runs bursts evolved bursts from the starting
// map.
func CountEvolvedInfections(input string, bursts int) (int, error) {
	carrier, err := NewCarrier(input)
	if err != nil {
		return 0, err
	}
	for i := 0; i < bursts; i++ {
		carrier.EvolvedBurst()
	}
	return carrier.Infections(), nil
}
