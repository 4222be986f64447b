// Package day15 judges pairs of values from two multiplicative
// generators.
package day15

import (
	"fmt"
	"strconv"
	"strings"

	"advent2017/internal/numutil"
)

const (
	// FactorA and FactorB drive the two generators.
	FactorA = 16807
	FactorB = 48271

	// Rounds and PickyRounds are how many pairs each judgement
	// considers.
	Rounds      = 40_000_000
	PickyRounds = 5_000_000

	modulus = 2147483647
)

// ParseSeeds reads the two starting values from the puzzle text, one
// "Generator X starts with N" line each.
func ParseSeeds(input string) (a, b int, err error) {
	lines := numutil.Lines(input)
	if len(lines) != 2 {
		return 0, 0, fmt.Errorf("want 2 generator lines, got %d", len(lines))
	}
	seeds := make([]int, 2)
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return 0, 0, fmt.Errorf("line %d: empty generator line", i)
		}
		n, convErr := strconv.Atoi(fields[len(fields)-1])
		if convErr != nil {
			return 0, 0, fmt.Errorf("line %d: parse seed: %w", i, convErr)
		}
		seeds[i] = n
	}
	return seeds[0], seeds[1], nil
}

// Generator produces values by repeatedly multiplying by a factor
// modulo 2^31-1.
type Generator struct {
	value  uint64
	factor uint64
}

// NewGenerator starts a generator from a seed value.
func NewGenerator(seed, factor int) *Generator {
	return &Generator{value: uint64(seed), factor: uint64(factor)}
}

// Next advances the generator and returns its new value.
func (g *Generator) Next() uint64 {
	g.value = g.value * g.factor % modulus
	return g.value
}

// NextMultiple advances until the generator produces a multiple of n.
func (g *Generator) NextMultiple(n uint64) uint64 {
	for {
		if v := g.Next(); v%n == 0 {
			return v
		}
	}
}

// Judge counts how many of the first rounds pairs agree in their
// lowest 16 bits.
func Judge(a, b *Generator, rounds int) int {
	count := 0
	for i := 0; i < rounds; i++ {
		if a.Next()&0xFFFF == b.Next()&0xFFFF {
			count++
		}
	}
	return count
}

// JudgePicky is Judge over the picky generators: a only offers
// multiples of 4 and b only multiples of 8.
func JudgePicky(a, b *Generator, rounds int) int {
	count := 0
	for i := 0; i < rounds; i++ {
		if a.NextMultiple(4)&0xFFFF == b.NextMultiple(8)&0xFFFF {
			count++
		}
	}
	return count
}
