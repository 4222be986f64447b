package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleTower = `pbga (66)
xhth (57)
ebii (61)
havc (66)
ktlj (57)
fwft (72) -> ktlj, cntj, xhth
qoyq (66)
padx (45) -> pbga, havc, qoyq
tknk (41) -> ugml, padx, fwft
jptl (61)
ugml (68) -> gyxo, ebii, jptl
gyxo (61)
cntj (57)`

func TestParseNode(t *testing.T) {
	t.Run("with children", func(t *testing.T) {
		node, err := parseNode("fwft (72) -> ktlj, cntj, xhth")
		require.NoError(t, err)
		assert.Equal(t, "fwft", node.Name)
		assert.Equal(t, 72, node.Weight)
		assert.Equal(t, []string{"ktlj", "cntj", "xhth"}, node.Children)
	})

	t.Run("leaf", func(t *testing.T) {
		node, err := parseNode("pbga (66)")
		require.NoError(t, err)
		assert.Equal(t, "pbga", node.Name)
		assert.Equal(t, 66, node.Weight)
		assert.Empty(t, node.Children)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseNode("not a node")
		assert.Error(t, err)
	})
}

func TestTowerBase(t *testing.T) {
	tower, err := ParseTower(exampleTower)
	require.NoError(t, err)
	assert.Equal(t, "tknk", tower.Base())
}

func TestSubWeight(t *testing.T) {
	tower, err := ParseTower(exampleTower)
	require.NoError(t, err)
	assert.Equal(t, 251, tower.SubWeight("ugml"))
	assert.Equal(t, 243, tower.SubWeight("padx"))
	assert.Equal(t, 243, tower.SubWeight("fwft"))
}

func TestCorrectedWeight(t *testing.T) {
	tower, err := ParseTower(exampleTower)
	require.NoError(t, err)
	corrected, err := tower.CorrectedWeight()
	require.NoError(t, err)
	assert.Equal(t, 60, corrected)
}

func TestBalancedTower(t *testing.T) {
	tower, err := ParseTower("a (1) -> b, c, d\nb (2)\nc (2)\nd (2)")
	require.NoError(t, err)
	_, err = tower.CorrectedWeight()
	assert.Error(t, err)
}

func TestUnknownChild(t *testing.T) {
	_, err := ParseTower("a (1) -> b")
	assert.Error(t, err)
}
