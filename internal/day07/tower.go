// Package day07 parses a tower of stacked programs and finds the
// single mis-weighted program that unbalances it.
package day07

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent2017/internal/numutil"
)

var nodeRe = regexp.MustCompile(`^([a-z]+) \((\d+)\)(?: -> ([a-z, ]+))?$`)

// Node is one program in the tower: its own weight plus the names of
// the programs directly on top of it.
type Node struct {
	Name     string
	Weight   int
	Children []string
	parent   string
	// cached total weight of the subtower rooted here, 0 = unset
	subWeight int
}

// Tower is a set of programs where each has at most one parent and
// exactly one, the base, has none.
type Tower struct {
	nodes map[string]*Node
	base  string
}

// ParseTower builds a tower from lines like
// "fwft (72) -> ktlj, cntj, xhth".
func ParseTower(input string) (*Tower, error) {
	nodes := make(map[string]*Node)
	for i, line := range numutil.Lines(input) {
		node, err := parseNode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		nodes[node.Name] = node
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty tower input")
	}
	for _, node := range nodes {
		for _, child := range node.Children {
			childNode, ok := nodes[child]
			if !ok {
				return nil, fmt.Errorf("node %s references unknown child %s", node.Name, child)
			}
			childNode.parent = node.Name
		}
	}
	base := ""
	for name, node := range nodes {
		if node.parent == "" {
			if base != "" {
				return nil, fmt.Errorf("multiple base candidates: %s and %s", base, name)
			}
			base = name
		}
	}
	if base == "" {
		return nil, fmt.Errorf("no base node found")
	}
	return &Tower{nodes: nodes, base: base}, nil
}

func parseNode(line string) (*Node, error) {
	m := nodeRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("cannot parse node %q", line)
	}
	weight, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("parse weight in %q: %w", line, err)
	}
	node := &Node{Name: m[1], Weight: weight}
	if m[3] != "" {
		node.Children = strings.Split(m[3], ", ")
	}
	return node, nil
}

// Base returns the name of the program at the bottom of the tower.
func (t *Tower) Base() string {
	return t.base
}

// SubWeight returns the total weight of the subtower rooted at name.
func (t *Tower) SubWeight(name string) int {
	node := t.nodes[name]
	if node == nil {
		return 0
	}
	if node.subWeight != 0 {
		return node.subWeight
	}
	weight := node.Weight
	for _, child := range node.Children {
		weight += t.SubWeight(child)
	}
	node.subWeight = weight
	return weight
}

// CorrectedWeight finds the single program whose weight unbalances the
// tower and returns the weight it should have.
func (t *Tower) CorrectedWeight() (int, error) {
	return t.correct(t.base, -1)
}

// correct descends into the imbalanced subtower. expected is the total
// weight the subtower at name must have, or -1 at the base where no
// constraint exists.
func (t *Tower) correct(name string, expected int) (int, error) {
	node := t.nodes[name]
	odd, normal, err := t.oddChild(node)
	if err != nil {
		return 0, err
	}
	if odd == "" {
		// All children balanced: this node's own weight is wrong.
		if expected < 0 {
			return 0, fmt.Errorf("tower rooted at %s is already balanced", name)
		}
		childSum := t.SubWeight(name) - node.Weight
		return expected - childSum, nil
	}
	return t.correct(odd, normal)
}

// oddChild finds the child of node whose subtower weight differs from
// its siblings. Returns the odd child's name and the weight its
// subtower should have, or "" when the children are balanced.
func (t *Tower) oddChild(node *Node) (string, int, error) {
	if len(node.Children) < 2 {
		return "", 0, nil
	}
	weights := make(map[int][]string)
	for _, child := range node.Children {
		w := t.SubWeight(child)
		weights[w] = append(weights[w], child)
	}
	if len(weights) == 1 {
		return "", 0, nil
	}
	if len(weights) > 2 {
		return "", 0, fmt.Errorf("more than one imbalanced child under %s", node.Name)
	}
	odd, normal := "", 0
	for w, names := range weights {
		if len(names) == 1 {
			odd = names[0]
		} else {
			normal = w
		}
	}
	if odd == "" {
		return "", 0, fmt.Errorf("ambiguous imbalance under %s", node.Name)
	}
	return odd, normal, nil
}
