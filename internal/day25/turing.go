// Package day25 runs a Turing machine from its blueprint text and
// computes its diagnostic checksum.
package day25

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerRe = regexp.MustCompile(
		`^Begin in state ([A-Z])\.\nPerform a diagnostic checksum after (\d+) steps\.$`)
	stateRe = regexp.MustCompile(
		`In state ([A-Z]):\n` +
			`  If the current value is 0:\n` +
			`    - Write the value (0|1)\.\n` +
			`    - Move one slot to the (left|right)\.\n` +
			`    - Continue with state ([A-Z])\.\n` +
			`  If the current value is 1:\n` +
			`    - Write the value (0|1)\.\n` +
			`    - Move one slot to the (left|right)\.\n` +
			`    - Continue with state ([A-Z])\.`)
)

// action is what a state does for one tape value: write, move, and
// continue.
type action struct {
	write int
	move  int
	next  string
}

// Machine is a parsed blueprint: the state table plus start state and
// checksum step count.
type Machine struct {
	start  string
	steps  int
	states map[string][2]action
}

// ParseBlueprint reads the blueprint text format.
func ParseBlueprint(input string) (*Machine, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	head, tail, _ := strings.Cut(input, "\n\n")
	m := headerRe.FindStringSubmatch(strings.TrimSpace(head))
	if m == nil {
		return nil, fmt.Errorf("malformed blueprint header")
	}
	steps, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("parse step count: %w", err)
	}
	machine := &Machine{start: m[1], steps: steps, states: make(map[string][2]action)}

	for _, block := range stateRe.FindAllStringSubmatch(tail, -1) {
		var actions [2]action
		for value := 0; value < 2; value++ {
			a := action{next: block[4+value*3]}
			a.write, _ = strconv.Atoi(block[2+value*3])
			if block[3+value*3] == "right" {
				a.move = 1
			} else {
				a.move = -1
			}
			actions[value] = a
		}
		machine.states[block[1]] = actions
	}
	if len(machine.states) == 0 {
		return nil, fmt.Errorf("blueprint has no states")
	}
	if _, ok := machine.states[machine.start]; !ok {
		return nil, fmt.Errorf("start state %q not defined", machine.start)
	}
	return machine, nil
}

// Checksum runs the machine for its step budget and counts the ones
// left on the tape.
func (m *Machine) Checksum() (int, error) {
	tape := make(map[int]int)
	cursor := 0
	state := m.start
	for step := 0; step < m.steps; step++ {
		actions, ok := m.states[state]
		if !ok {
			return 0, fmt.Errorf("undefined state %q", state)
		}
		a := actions[tape[cursor]]
		if a.write == 0 {
			delete(tape, cursor)
		} else {
			tape[cursor] = 1
		}
		cursor += a.move
		state = a.next
	}
	return len(tape), nil
}
