package day23

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountMuls(t *testing.T) {
	// b counts down from 3, multiplying each time.
	instructions, err := Parse(`set b 3
jnz b 2
jnz 1 4
mul a b
sub b 1
jnz 1 -4
`)
	require.NoError(t, err)
	muls, err := CountMuls(instructions)
	require.NoError(t, err)
	assert.Equal(t, 3, muls)
}

func TestCountMulsLiteralTarget(t *testing.T) {
	instructions, err := Parse("set 1 2")
	require.NoError(t, err)
	_, err = CountMuls(instructions)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("set b")
	assert.Error(t, err)

	_, err = Parse("add b 1")
	assert.Error(t, err)
}

func TestCompositeCount(t *testing.T) {
	// For n=0 the scan covers b from 100000 to 117000 in steps of
	// 17. Cross-check the trial division against Miller-Rabin.
	want := 0
	for b := 100_000; b <= 117_000; b += 17 {
		if !big.NewInt(int64(b)).ProbablyPrime(0) {
			want++
		}
	}
	assert.Equal(t, want, CompositeCount(0))
}

func TestComposite(t *testing.T) {
	assert.False(t, composite(2))
	assert.False(t, composite(101))
	assert.True(t, composite(4))
	assert.True(t, composite(100001))
}
