package day21

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleRules = `../.# => ##./#../...
.#./..#/### => #..#/..../..../#..#
`

func TestLitPixels(t *testing.T) {
	rules, err := ParseRules(exampleRules)
	require.NoError(t, err)
	lit, err := rules.LitPixels(2)
	require.NoError(t, err)
	assert.Equal(t, 12, lit)
}

func TestEnhanceOneRound(t *testing.T) {
	rules, err := ParseRules(exampleRules)
	require.NoError(t, err)
	grid, err := rules.Enhance(1)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"#..#", "....", "....", "#..#"}, grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestRotateFlip(t *testing.T) {
	grid := []string{"#..", ".#.", "##."}
	if diff := cmp.Diff([]string{"#.#", "##.", "..."}, rotate(grid)); diff != "" {
		t.Errorf("rotate mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"..#", ".#.", ".##"}, flip(grid)); diff != "" {
		t.Errorf("flip mismatch (-want +got):\n%s", diff)
	}
}

func TestOrientationLookup(t *testing.T) {
	rules, err := ParseRules("#./.. => ###/###/###")
	require.NoError(t, err)
	// All four positions of the single pixel hit the same rule.
	for _, key := range []string{"#./..", ".#/..", "../#.", "../.#"} {
		assert.Contains(t, rules, key)
	}
}

func TestParseRulesErrors(t *testing.T) {
	_, err := ParseRules("../.# -> ##./#../...")
	assert.Error(t, err)

	_, err = ParseRules("../.#/.. => ##./#../...")
	assert.Error(t, err)
}

func TestMissingRule(t *testing.T) {
	rules, err := ParseRules("../.# => ##./#../...")
	require.NoError(t, err)
	_, err = rules.LitPixels(1)
	assert.Error(t, err)
}
