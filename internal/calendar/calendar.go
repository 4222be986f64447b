// Package calendar maps puzzle days and parts to their solvers. The
// registry is a fixed table built at init; lookups are read-only and
// safe for concurrent use.
package calendar

import (
	"errors"
	"fmt"
	"sort"
)

// Solver computes one puzzle part from its raw input text.
type Solver func(input string) (string, error)

// Entry is one registered puzzle part.
type Entry struct {
	Day   int
	Part  int
	Name  string
	Solve Solver
}

type key struct {
	day, part int
}

// ErrUnknownDay is returned when no solver is registered for a
// requested day and part.
var ErrUnknownDay = errors.New("no solver registered")

var registry = make(map[key]Entry)

// register panics on duplicates; the table is wired once at init.
func register(day, part int, name string, solve Solver) {
	k := key{day, part}
	if _, dup := registry[k]; dup {
		panic(fmt.Sprintf("duplicate solver for day %d part %d", day, part))
	}
	registry[k] = Entry{Day: day, Part: part, Name: name, Solve: solve}
}

// Lookup finds the solver for a day and part.
func Lookup(day, part int) (Entry, error) {
	entry, ok := registry[key{day, part}]
	if !ok {
		return Entry{}, fmt.Errorf("day %d part %d: %w", day, part, ErrUnknownDay)
	}
	return entry, nil
}

// Entries lists every registered solver ordered by day then part.
func Entries() []Entry {
	entries := make([]Entry, 0, len(registry))
	for _, entry := range registry {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day < entries[j].Day
		}
		return entries[i].Part < entries[j].Part
	})
	return entries
}
