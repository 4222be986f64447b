package day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeeds(t *testing.T) {
	a, b, err := ParseSeeds("Generator A starts with 65\nGenerator B starts with 8921\n")
	require.NoError(t, err)
	assert.Equal(t, 65, a)
	assert.Equal(t, 8921, b)

	_, _, err = ParseSeeds("Generator A starts with 65\n")
	assert.Error(t, err)
}

func TestNext(t *testing.T) {
	a := NewGenerator(65, FactorA)
	b := NewGenerator(8921, FactorB)

	wantA := []uint64{1092455, 1181022009, 245556042, 1744312007, 1352636452}
	wantB := []uint64{430625591, 1233683848, 1431495498, 137874439, 285222916}
	for i := range wantA {
		assert.Equal(t, wantA[i], a.Next())
		assert.Equal(t, wantB[i], b.Next())
	}
}

func TestJudgeShort(t *testing.T) {
	a := NewGenerator(65, FactorA)
	b := NewGenerator(8921, FactorB)
	assert.Equal(t, 1, Judge(a, b, 5))
}

func TestJudge(t *testing.T) {
	if testing.Short() {
		t.Skip("40 million rounds")
	}
	a := NewGenerator(65, FactorA)
	b := NewGenerator(8921, FactorB)
	assert.Equal(t, 588, Judge(a, b, Rounds))
}

func TestNextMultiple(t *testing.T) {
	a := NewGenerator(65, FactorA)
	wantA := []uint64{1352636452, 1992081072, 530830436, 1980017072, 740335192}
	for _, want := range wantA {
		assert.Equal(t, want, a.NextMultiple(4))
	}

	b := NewGenerator(8921, FactorB)
	wantB := []uint64{1233683848, 862516352, 1159784568, 1616057672, 412269392}
	for _, want := range wantB {
		assert.Equal(t, want, b.NextMultiple(8))
	}
}

func TestJudgePicky(t *testing.T) {
	if testing.Short() {
		t.Skip("5 million rounds")
	}
	a := NewGenerator(65, FactorA)
	b := NewGenerator(8921, FactorB)
	assert.Equal(t, 309, JudgePicky(a, b, PickyRounds))
}
