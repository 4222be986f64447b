// Package day09 processes a character stream of nested groups and
// garbage, scoring groups by depth and counting garbage characters.
package day09

import "fmt"

// Result summarizes one processed stream.
type Result struct {
	// Score is the sum of group scores, where a group scores its
	// nesting depth (the outermost group scores 1).
	Score int
	// Garbage counts non-canceled characters inside garbage, not
	// counting the delimiters or canceled characters.
	Garbage int
}

// Process consumes a stream that must consist of one outermost group.
func Process(input string) (Result, error) {
	c := &consumer{stream: []rune(input)}
	if r, ok := c.next(); !ok || r != '{' {
		return Result{}, fmt.Errorf("stream must start with a group")
	}
	score, garbage, err := c.group(1)
	if err != nil {
		return Result{}, err
	}
	return Result{Score: score, Garbage: garbage}, nil
}

type consumer struct {
	stream []rune
	pos    int
}

func (c *consumer) next() (rune, bool) {
	if c.pos >= len(c.stream) {
		return 0, false
	}
	r := c.stream[c.pos]
	c.pos++
	return r, true
}

// group consumes the body of a group whose opening brace has already
// been read, returning the total score and garbage of the group and
// everything nested in it.
func (c *consumer) group(depth int) (score, garbage int, err error) {
	score = depth
	for {
		r, ok := c.next()
		if !ok {
			return 0, 0, fmt.Errorf("unterminated group at depth %d", depth)
		}
		switch r {
		case '{':
			subScore, subGarbage, err := c.group(depth + 1)
			if err != nil {
				return 0, 0, err
			}
			score += subScore
			garbage += subGarbage
		case '<':
			garbage += c.garbage()
		case '!':
			c.next()
		case '}':
			return score, garbage, nil
		case ',':
		default:
			return 0, 0, fmt.Errorf("unexpected character %q at depth %d", r, depth)
		}
	}
}

// garbage consumes up to and including the closing '>' and returns the
// number of non-canceled characters seen.
func (c *consumer) garbage() int {
	count := 0
	for {
		r, ok := c.next()
		if !ok {
			return count
		}
		switch r {
		case '!':
			c.next()
		case '>':
			return count
		default:
			count++
		}
	}
}
