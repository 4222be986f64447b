package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundFingerprint(t *testing.T) {
	knot := NewKnot(5)
	knot.Round([]int{3, 4, 1, 5})
	assert.Equal(t, 12, knot.Fingerprint())
}

func TestRoundSteps(t *testing.T) {
	knot := NewKnot(5)

	knot.tie(3)
	assert.Equal(t, []int{2, 1, 0, 3, 4}, knot.data)
	assert.Equal(t, 3, knot.pos)

	knot.tie(4)
	assert.Equal(t, []int{4, 3, 0, 1, 2}, knot.data)
	assert.Equal(t, 3, knot.pos)

	knot.tie(1)
	assert.Equal(t, []int{4, 3, 0, 1, 2}, knot.data)
	assert.Equal(t, 1, knot.pos)

	knot.tie(5)
	assert.Equal(t, []int{3, 4, 2, 1, 0}, knot.data)
	assert.Equal(t, 4, knot.pos)
}

func TestRoundFingerprintParse(t *testing.T) {
	_, err := RoundFingerprint("3,four,1")
	require.Error(t, err)
}

func TestHashString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "A2582A3A0E66E6E86E3812DCB672A272"},
		{"AoC 2017", "33EFEB34EA91902BB2F59C9920CAA6CD"},
		{"1,2,3", "3EFBE78A8D82F29979031A4AA0B16A9D"},
		{"1,2,4", "63960835BCDC130F0B66D7FF4F6A5A8E"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, HashString(tc.input))
		})
	}
}
