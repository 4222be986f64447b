// Package day23 interprets the coprocessor assembly and shortcuts its
// composite-counting inner loops.
package day23

import (
	"fmt"
	"strings"

	"advent2017/internal/numutil"
	"advent2017/internal/processor"
)

// Instruction is one coprocessor instruction: set, sub, mul, or jnz.
type Instruction struct {
	Op string
	X  processor.Operand
	Y  processor.Operand
}

// Parse reads one instruction per line.
func Parse(input string) ([]Instruction, error) {
	var instructions []Instruction
	for i, line := range numutil.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 fields, got %d", i, len(fields))
		}
		switch fields[0] {
		case "set", "sub", "mul", "jnz":
		default:
			return nil, fmt.Errorf("line %d: unknown instruction %q", i, fields[0])
		}
		instructions = append(instructions, Instruction{
			Op: fields[0],
			X:  processor.ParseOperand(fields[1]),
			Y:  processor.ParseOperand(fields[2]),
		})
	}
	return instructions, nil
}

// CountMuls runs the program with all registers zeroed and counts how
// many mul instructions execute.
func CountMuls(instructions []Instruction) (int, error) {
	env := processor.Environment{}
	muls := 0
	for pc := int64(0); pc >= 0 && pc < int64(len(instructions)); {
		instr := instructions[pc]
		jump := int64(1)
		switch instr.Op {
		case "jnz":
			if instr.X.Value(env) != 0 {
				jump = instr.Y.Value(env)
			}
		case "mul":
			muls++
			fallthrough
		default:
			target := instr.X.Register()
			if target == "" {
				return 0, fmt.Errorf("%s needs a register target", instr.Op)
			}
			value := instr.Y.Value(env)
			switch instr.Op {
			case "set":
				env.Set(target, value)
			case "sub":
				env.Set(target, env.Get(target)-value)
			case "mul":
				env.Set(target, env.Get(target)*value)
			}
		}
		pc += jump
	}
	return muls, nil
}

// CompositeCount is what the program computes when started with a=1:
// it scans b = n*100+100000 up to b+17000 in steps of 17 and counts
// the composite values. The interpreter would take hours on the
// nested trial loops, so the scan runs directly.
func CompositeCount(n int) int {
	lower := n*100 + 100_000
	upper := lower + 17_000
	count := 0
	for b := lower; b <= upper; b += 17 {
		if composite(b) {
			count++
		}
	}
	return count
}

func composite(n int) bool {
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return true
		}
	}
	return false
}
