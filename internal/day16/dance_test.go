package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDance(t *testing.T) {
	moves, err := ParseMoves("s1,x3/4,pe/b")
	require.NoError(t, err)
	assert.Equal(t, "baedc", Dance(moves, 5))
}

func TestDanceRepeated(t *testing.T) {
	moves, err := ParseMoves("s1,x3/4,pe/b")
	require.NoError(t, err)
	assert.Equal(t, "ceadb", DanceRepeated(moves, 5, 2))
}

func TestDanceRepeatedCycle(t *testing.T) {
	// A full spin is the identity, so any round count lands on the
	// start line.
	moves, err := ParseMoves("s5")
	require.NoError(t, err)
	assert.Equal(t, "abcde", DanceRepeated(moves, 5, 1_000_000_000))
}

func TestParseMovesErrors(t *testing.T) {
	cases := []string{"s", "sx", "x3", "x3/b", "x-1/0", "x0/-2", "pab", "pz/b", "pa/q", "q1"}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMoves(input)
			assert.Error(t, err)
		})
	}
}

func TestPartnerNameBounds(t *testing.T) {
	// a and p are the first and last legal names.
	moves, err := ParseMoves("pa/p")
	require.NoError(t, err)
	assert.Equal(t, "pbcdefghijklmnoa", Dance(moves, 16))
}
