// Package day18 interprets the duet assembly, first as a single
// program with a sound card, then as two programs exchanging values
// over queues.
package day18

import (
	"fmt"
	"strings"

	"advent2017/internal/numutil"
	"advent2017/internal/processor"
)

// Instruction is one duet assembly instruction.
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
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: want 2 or 3 fields, got %d", i, len(fields))
		}
		instr := Instruction{Op: fields[0], X: processor.ParseOperand(fields[1])}
		switch instr.Op {
		case "snd", "rcv":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: %s takes one operand", i, instr.Op)
			}
		case "set", "add", "mul", "mod", "jgz":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: %s takes two operands", i, instr.Op)
			}
			instr.Y = processor.ParseOperand(fields[2])
		default:
			return nil, fmt.Errorf("line %d: unknown instruction %q", i, instr.Op)
		}
		instructions = append(instructions, instr)
	}
	return instructions, nil
}

// FirstRecovered runs the program as a sound card: snd plays a
// frequency and rcv, on a nonzero operand, recovers the last one
// played. It returns that first recovered frequency.
func FirstRecovered(instructions []Instruction) (int64, error) {
	env := processor.Environment{}
	var lastSound int64
	for pc := int64(0); pc >= 0 && pc < int64(len(instructions)); {
		instr := instructions[pc]
		jump := int64(1)
		switch instr.Op {
		case "snd":
			lastSound = instr.X.Value(env)
		case "rcv":
			if instr.X.Value(env) != 0 {
				return lastSound, nil
			}
		case "jgz":
			if instr.X.Value(env) > 0 {
				jump = instr.Y.Value(env)
			}
		default:
			if err := applyArithmetic(env, instr); err != nil {
				return 0, err
			}
		}
		pc += jump
	}
	return 0, fmt.Errorf("program terminated without recovering a sound")
}

func applyArithmetic(env processor.Environment, instr Instruction) error {
	target := instr.X.Register()
	if target == "" {
		return fmt.Errorf("%s needs a register target", instr.Op)
	}
	value := instr.Y.Value(env)
	switch instr.Op {
	case "set":
		env.Set(target, value)
	case "add":
		env.Set(target, env.Get(target)+value)
	case "mul":
		env.Set(target, env.Get(target)*value)
	case "mod":
		env.Set(target, env.Get(target)%value)
	default:
		return fmt.Errorf("unknown instruction %q", instr.Op)
	}
	return nil
}

// program is one half of the duet: its own registers, counter, and
// inbound queue.
type program struct {
	env     processor.Environment
	pc      int64
	inbox   []int64
	sent    int
	waiting bool
}

func newProgram(id int64) *program {
	return &program{env: processor.Environment{"p": id}}
}

// run executes instructions until the program blocks on an empty
// inbox or terminates, appending sends to the peer's inbox.
func (p *program) run(instructions []Instruction, peer *program) error {
	p.waiting = false
	for p.pc >= 0 && p.pc < int64(len(instructions)) {
		instr := instructions[p.pc]
		jump := int64(1)
		switch instr.Op {
		case "snd":
			peer.inbox = append(peer.inbox, instr.X.Value(p.env))
			p.sent++
		case "rcv":
			if len(p.inbox) == 0 {
				p.waiting = true
				return nil
			}
			target := instr.X.Register()
			if target == "" {
				return fmt.Errorf("rcv needs a register target")
			}
			p.env.Set(target, p.inbox[0])
			p.inbox = p.inbox[1:]
		case "jgz":
			if instr.X.Value(p.env) > 0 {
				jump = instr.Y.Value(p.env)
			}
		default:
			if err := applyArithmetic(p.env, instr); err != nil {
				return err
			}
		}
		p.pc += jump
	}
	return nil
}

// terminated reports whether the program counter left the program.
func (p *program) terminated(instructions []Instruction) bool {
	return p.pc < 0 || p.pc >= int64(len(instructions))
}

// CountSends runs programs 0 and 1 in tandem until both are blocked
// or terminated, and returns how many values program 1 sent. The
// programs alternate deterministically, each running until it blocks.
func CountSends(instructions []Instruction) (int, error) {
	zero := newProgram(0)
	one := newProgram(1)
	for {
		if err := zero.run(instructions, one); err != nil {
			return 0, err
		}
		if err := one.run(instructions, zero); err != nil {
			return 0, err
		}
		zeroStuck := zero.terminated(instructions) || (zero.waiting && len(zero.inbox) == 0)
		oneStuck := one.terminated(instructions) || (one.waiting && len(one.inbox) == 0)
		if zeroStuck && oneStuck {
			return one.sent, nil
		}
	}
}
