package day24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleComponents = `0/2
2/2
2/3
3/4
3/5
0/1
10/1
9/10
`

func TestStrongest(t *testing.T) {
	components, err := ParseComponents(exampleComponents)
	require.NoError(t, err)
	assert.Equal(t, 31, Strongest(components))
}

func TestLongestStrength(t *testing.T) {
	components, err := ParseComponents(exampleComponents)
	require.NoError(t, err)
	assert.Equal(t, 19, LongestStrength(components))
}

func TestParseComponentsErrors(t *testing.T) {
	_, err := ParseComponents("0-2")
	assert.Error(t, err)

	_, err = ParseComponents("0/two")
	assert.Error(t, err)
}
