// Package day16 runs the promenade of dancing programs: spins,
// exchanges, and partner swaps over a line of named programs.
package day16

import (
	"fmt"
	"strconv"
	"strings"
)

// line is the dancing order. Spins only move the logical start, so
// the backing slice never rotates: logical position i lives at
// physical index (i+offset) mod len.
type line struct {
	programs []byte
	offset   int
}

func newLine(size int) *line {
	programs := make([]byte, size)
	for i := range programs {
		programs[i] = byte('a' + i)
	}
	return &line{programs: programs}
}

func (l *line) physical(i int) int {
	return (i + l.offset) % len(l.programs)
}

func (l *line) String() string {
	out := make([]byte, len(l.programs))
	for i := range out {
		out[i] = l.programs[l.physical(i)]
	}
	return string(out)
}

// Move is one dance move, applied to a line of programs.
type Move interface {
	apply(l *line)
}

// spin moves the last n programs to the front.
type spin struct{ n int }

// exchange swaps the programs at two positions.
type exchange struct{ a, b int }

// partner swaps two programs by name.
type partner struct{ a, b byte }

func (m spin) apply(l *line) {
	size := len(l.programs)
	l.offset = (l.offset + size - m.n) % size
}

func (m exchange) apply(l *line) {
	a, b := l.physical(m.a), l.physical(m.b)
	l.programs[a], l.programs[b] = l.programs[b], l.programs[a]
}

func (m partner) apply(l *line) {
	a := strings.IndexByte(string(l.programs), m.a)
	b := strings.IndexByte(string(l.programs), m.b)
	l.programs[a], l.programs[b] = l.programs[b], l.programs[a]
}

// ParseMoves reads a comma-separated move list: sN, xA/B, pA/B.
func ParseMoves(input string) ([]Move, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		if len(part) < 2 {
			return nil, fmt.Errorf("move %q too short", part)
		}
		switch part[0] {
		case 's':
			n, err := strconv.Atoi(part[1:])
			if err != nil {
				return nil, fmt.Errorf("spin %q: %w", part, err)
			}
			moves = append(moves, spin{n: n})
		case 'x':
			head, tail, ok := strings.Cut(part[1:], "/")
			if !ok {
				return nil, fmt.Errorf("exchange %q: missing slash", part)
			}
			a, err := strconv.Atoi(head)
			if err != nil {
				return nil, fmt.Errorf("exchange %q: %w", part, err)
			}
			b, err := strconv.Atoi(tail)
			if err != nil {
				return nil, fmt.Errorf("exchange %q: %w", part, err)
			}
			if a < 0 || b < 0 {
				return nil, fmt.Errorf("exchange %q: negative position", part)
			}
			moves = append(moves, exchange{a: a, b: b})
		case 'p':
			head, tail, ok := strings.Cut(part[1:], "/")
			if !ok || len(head) != 1 || len(tail) != 1 {
				return nil, fmt.Errorf("partner %q: want single names", part)
			}
			// Program names run a..p; anything else would miss the
			// line entirely.
			if head[0] < 'a' || head[0] > 'p' || tail[0] < 'a' || tail[0] > 'p' {
				return nil, fmt.Errorf("partner %q: names must be a..p", part)
			}
			moves = append(moves, partner{a: head[0], b: tail[0]})
		default:
			return nil, fmt.Errorf("unknown move %q", part)
		}
	}
	return moves, nil
}

// Dance applies the moves once to a fresh line of size programs.
func Dance(moves []Move, size int) string {
	l := newLine(size)
	for _, move := range moves {
		move.apply(l)
	}
	return l.String()
}

// DanceRepeated applies the whole dance rounds times. The order
// revisits its start after a short cycle, so only rounds modulo the
// cycle length need dancing.
func DanceRepeated(moves []Move, size, rounds int) string {
	l := newLine(size)
	seen := []string{l.String()}
	for round := 0; round < rounds; round++ {
		for _, move := range moves {
			move.apply(l)
		}
		order := l.String()
		if order == seen[0] {
			return seen[rounds%(round+1)]
		}
		seen = append(seen, order)
	}
	return l.String()
}
