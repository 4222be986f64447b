package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"{}", 1},
		{"{{{}}}", 6},
		{"{{},{}}", 5},
		{"{{{},{},{{}}}}", 16},
		{"{<a>,<a>,<a>,<a>}", 1},
		{"{{<ab>},{<ab>},{<ab>},{<ab>}}", 9},
		{"{{<!!>},{<!!>},{<!!>},{<!!>}}", 9},
		{"{{<a!>},{<a!>},{<a!>},{<ab>}}", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Process(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Score)
		})
	}
}

func TestGarbageCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"{<>}", 0},
		{"{<random characters>}", 17},
		{"{<<<<>}", 3},
		{"{<{!>}>}", 2},
		{"{<!!>}", 0},
		{"{<!!!>>}", 0},
		{`{<{o"i!a,<{i<a>}`, 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Process(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Garbage)
		})
	}
}

func TestMalformedStream(t *testing.T) {
	for _, input := range []string{"", "<a>", "{", "{x}"} {
		_, err := Process(input)
		assert.Error(t, err, "input %q", input)
	}
}
