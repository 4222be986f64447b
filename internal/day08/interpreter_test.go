package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleProgram = `b inc 5 if a > 1
a inc 1 if b < 5
c dec -10 if a >= 1
c inc -20 if c == 10`

func TestConditions(t *testing.T) {
	tests := []struct {
		name      string
		registers map[string]int
		cond      condition
		want      bool
	}{
		{"eq default zero", map[string]int{}, condition{"a", "==", 0}, true},
		{"eq mismatch", map[string]int{}, condition{"a", "==", 1}, false},
		{"lt", map[string]int{"a": 5}, condition{"a", "<", 6}, true},
		{"gt", map[string]int{"a": 5}, condition{"a", ">", 4}, true},
		{"lte boundary", map[string]int{"a": 5}, condition{"a", "<=", 5}, true},
		{"gte boundary", map[string]int{"a": 5}, condition{"a", ">=", 5}, true},
		{"ne", map[string]int{"a": 5}, condition{"a", "!=", 4}, true},
		{"ne mismatch", map[string]int{}, condition{"a", "!=", 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.satisfied(tt.registers))
		})
	}
}

func TestRun(t *testing.T) {
	in, err := Parse(exampleProgram)
	require.NoError(t, err)
	in.Run()

	assert.Equal(t, 1, in.LargestRegister())
	assert.Equal(t, 10, in.LargestEver())
	assert.Equal(t, 1, in.Register("a"))
	assert.Equal(t, 0, in.Register("b"))
	assert.Equal(t, -10, in.Register("c"))
}

func TestUnsatisfiedConditionLeavesRegister(t *testing.T) {
	in, err := Parse("a inc 5 if a == 4")
	require.NoError(t, err)
	in.Run()
	assert.Equal(t, 0, in.Register("a"))
	assert.Equal(t, 0, in.LargestEver())
}

func TestParseError(t *testing.T) {
	_, err := Parse("b frob 5 if a > 1")
	assert.Error(t, err)
}
