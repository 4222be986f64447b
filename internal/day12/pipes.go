// Package day12 groups programs connected by bidirectional pipes.
package day12

import (
	"fmt"
	"strconv"
	"strings"

	"advent2017/internal/numutil"
)

// Graph maps each program to its directly connected neighbors.
type Graph map[int][]int

// ParseGraph reads one "id <-> n, m, ..." line per program.
func ParseGraph(input string) (Graph, error) {
	graph := make(Graph)
	for i, line := range numutil.Lines(input) {
		head, tail, ok := strings.Cut(line, " <-> ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing pipe separator", i)
		}
		id, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse program id: %w", i, err)
		}
		neighbors, err := numutil.SeparatedNumbers(tail, ",")
		if err != nil {
			return nil, fmt.Errorf("line %d: parse neighbors: %w", i, err)
		}
		graph[id] = neighbors
	}
	return graph, nil
}

// Group returns the set of programs reachable from start.
func (g Graph) Group(start int) map[int]bool {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g[id] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// GroupCount counts the connected components of the graph.
func (g Graph) GroupCount() int {
	seen := make(map[int]bool, len(g))
	count := 0
	for id := range g {
		if seen[id] {
			continue
		}
		count++
		for member := range g.Group(id) {
			seen[member] = true
		}
	}
	return count
}
