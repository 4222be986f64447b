// Package day08 interprets a list of conditional register increments
// and tracks the largest value held by any register.
package day08

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"advent2017/internal/numutil"
)

var instructionRe = regexp.MustCompile(`^([a-z]+) (inc|dec) (-?\d+) if ([a-z]+) (==|!=|<|>|<=|>=) (-?\d+)$`)

// condition gates an instruction on a register comparison.
type condition struct {
	register string
	op       string
	value    int
}

func (c condition) satisfied(registers map[string]int) bool {
	current := registers[c.register]
	switch c.op {
	case "==":
		return current == c.value
	case "!=":
		return current != c.value
	case "<":
		return current < c.value
	case ">":
		return current > c.value
	case "<=":
		return current <= c.value
	case ">=":
		return current >= c.value
	}
	return false
}

// instruction adjusts a register by delta when its condition holds.
// dec is normalized into a negative delta at parse time.
type instruction struct {
	register string
	delta    int
	cond     condition
}

// Interpreter executes a parsed program against a register file that
// starts with every register at zero.
type Interpreter struct {
	instructions []instruction
	registers    map[string]int
	largestEver  int
	executed     bool
}

// Parse builds an interpreter from lines like "b inc 5 if a > 1".
func Parse(input string) (*Interpreter, error) {
	var instructions []instruction
	for i, line := range numutil.Lines(input) {
		m := instructionRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: cannot parse instruction %q", i, line)
		}
		delta, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if m[2] == "dec" {
			delta = -delta
		}
		condValue, err := strconv.Atoi(m[6])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		instructions = append(instructions, instruction{
			register: m[1],
			delta:    delta,
			cond:     condition{register: m[4], op: m[5], value: condValue},
		})
	}
	return &Interpreter{
		instructions: instructions,
		registers:    make(map[string]int),
		largestEver:  math.MinInt,
	}, nil
}

// Run executes every instruction in order.
func (in *Interpreter) Run() {
	for _, inst := range in.instructions {
		if inst.cond.satisfied(in.registers) {
			in.registers[inst.register] += inst.delta
			if v := in.registers[inst.register]; v > in.largestEver {
				in.largestEver = v
			}
		}
	}
	in.executed = true
}

// LargestRegister returns the largest value held by any register after
// execution.
func (in *Interpreter) LargestRegister() int {
	largest := math.MinInt
	for _, v := range in.registers {
		if v > largest {
			largest = v
		}
	}
	if largest == math.MinInt {
		return 0
	}
	return largest
}

// LargestEver returns the largest value any register held at any point
// during execution.
func (in *Interpreter) LargestEver() int {
	if !in.executed || in.largestEver == math.MinInt {
		return 0
	}
	return in.largestEver
}

// Register returns the current value of a register.
func (in *Interpreter) Register(name string) int {
	return in.registers[name]
}
