package day13

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleFirewall = `0: 3
1: 2
4: 4
6: 4
`

func TestSeverity(t *testing.T) {
	firewall, err := ParseFirewall(exampleFirewall)
	require.NoError(t, err)
	assert.Equal(t, 24, firewall.Severity())
}

func TestSafeDelay(t *testing.T) {
	firewall, err := ParseFirewall(exampleFirewall)
	require.NoError(t, err)
	assert.Equal(t, 10, firewall.SafeDelay())
}

func TestParseFirewallErrors(t *testing.T) {
	_, err := ParseFirewall("0 3")
	assert.Error(t, err)

	_, err = ParseFirewall("0: zero")
	assert.Error(t, err)

	_, err = ParseFirewall("0: 0")
	assert.Error(t, err)
}
