// Package processor holds the register environment and operand model
// shared by the duet and coprocessor assembly interpreters.
package processor

import "strconv"

// Environment is a register file. Registers are named by single
// letters and start at zero.
type Environment map[string]int64

// Get returns the value of a register, zero if it was never written.
func (e Environment) Get(name string) int64 {
	return e[name]
}

// Set writes a register.
func (e Environment) Set(name string, value int64) {
	e[name] = value
}

// Operand is either an integer literal or a register reference.
type Operand struct {
	literal  int64
	register string
}

// ParseOperand reads an operand token: a decimal literal, or anything
// else as a register name.
func ParseOperand(token string) Operand {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Operand{literal: n}
	}
	return Operand{register: token}
}

// Register returns the register this operand names, empty for
// literals. Instructions that write need a register target.
func (o Operand) Register() string {
	return o.register
}

// Value resolves the operand against an environment.
func (o Operand) Value(env Environment) int64 {
	if o.register != "" {
		return env.Get(o.register)
	}
	return o.literal
}
